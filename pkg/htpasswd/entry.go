package htpasswd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// entry is one line of a credential file: either a parsed credential or, if
// the line does not qualify as one, the raw line which is preserved as it is.
type entry struct {
	credential *Credential
	rawLine    []byte
}

func (this *entry) read(rawLine []byte) {
	if len(rawLine) == 0 {
		*this = entry{}
		return
	}
	var buf Credential
	if err := buf.UnmarshalText(rawLine); err != nil {
		*this = entry{nil, bytes.Clone(rawLine)}
		return
	}
	*this = entry{&buf, nil}
}

func (this *entry) write(to io.Writer) error {
	if c := this.credential; c != nil {
		return this.writeLine([]byte(c.String()), to)
	}
	if rawLine := this.rawLine; len(rawLine) > 0 {
		return this.writeLine(rawLine, to)
	}
	return nil
}

func (this *entry) writeLine(line []byte, to io.Writer) error {
	fullNewLine := append(line, '\n')
	if n, err := to.Write(fullNewLine); err != nil {
		return err
	} else if n != len(fullNewLine) {
		return io.ErrShortWrite
	}
	return nil
}

func (this *entry) IsZero() bool {
	return this.credential == nil && len(this.rawLine) == 0
}

type entries []entry

func (this *entries) readFrom(from io.Reader) error {
	rd := bufio.NewScanner(from)
	rd.Split(bufio.ScanLines)

	var bufs entries
	for rd.Scan() {
		var e entry
		e.read(rd.Bytes())
		bufs = append(bufs, e)
	}
	if err := rd.Err(); err != nil {
		return err
	}

	*this = bufs
	return nil
}

func (this entries) writeTo(to io.Writer) error {
	for i, e := range this {
		if err := e.write(to); err != nil {
			return fmt.Errorf("cannot write entry #%d: %w", i, err)
		}
	}
	return nil
}

// replaceFirst swaps the first entry named like credential and leaves every
// other one alone. It reports whether there was one.
func (this entries) replaceFirst(credential *Credential) bool {
	for i, e := range this {
		if c := e.credential; c != nil && c.Name == credential.Name {
			this[i] = entry{credential: credential}
			return true
		}
	}
	return false
}

// removeAll drops every entry of username, not just the first one.
func (this entries) removeAll(username string) (entries, bool) {
	result := make(entries, 0, len(this))
	found := false
	for _, e := range this {
		if c := e.credential; c != nil && c.Name == username {
			found = true
			continue
		}
		result = append(result, e)
	}
	return result, found
}
