package htpasswd

import (
	"sync"
	"time"

	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/fields"
	"github.com/fsnotify/fsnotify"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/errors"
)

var (
	ErrWatchedFileVanished = errors.System.Newf("watched credential file was removed or renamed")

	DefaultSyncThreshold = time.Second * 2
)

// Watcher keeps a Matcher for Filename up to date while the file changes on
// disk, regardless of whether this process or someone else changes it.
// Changes have to settle for SyncThreshold before the file is re-read.
//
// It is required to call Init before first usage and Close for disposing.
type Watcher struct {
	// Filename points to the credential file to watch. Required.
	Filename string

	// SyncThreshold ensures that changes are only accepted if there are no
	// more new ones within this duration. This prevents that the file is
	// loaded too often. This defaults to DefaultSyncThreshold.
	SyncThreshold time.Duration

	// OnError is called for errors which appear while watching, outside of
	// any method call. If empty they are logged via Logger.
	OnError func(logger log.Logger, err error, detail string)

	// Logger will be used to log events to. If empty the log.GetRootLogger()
	// will be used.
	Logger log.Logger

	matcher     Matcher
	watcher     *fsnotify.Watcher
	reloadTimer *time.Timer
	mutex       sync.RWMutex
}

// Init loads Filename and starts watching it for changes.
func (this *Watcher) Init() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if this.Filename == "" {
		return errors.Config.Newf("no credential file to watch provided")
	}

	if err := this.matcher.Set(this.Filename); err != nil {
		return errors.Config.Newf("cannot load credential file %q: %w", this.Filename, err)
	}

	if this.reloadTimer == nil {
		first := true
		this.reloadTimer = time.AfterFunc(-1, func() {
			// The first load already happened synchronously above...
			if first {
				first = false
				return
			}
			this.reload()
		})
	}

	success := false
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.System.Newf("cannot initialize file watcher for %q: %w", this.Filename, err)
	}
	defer common.DoOnFailureIgnore(&success, watcher.Close)
	this.watcher = watcher
	defer common.DoOnFailure(&success, func() {
		this.watcher = nil
	})

	go this.watchForChanges(watcher)

	if err := watcher.Add(this.Filename); err != nil {
		return errors.System.Newf("cannot watch for filesystem changes of %q: %w", this.Filename, err)
	}

	success = true
	return nil
}

// Match checks the given username and password against the last loaded
// state of the watched file.
func (this *Watcher) Match(username, password string) bool {
	this.mutex.RLock()
	defer this.mutex.RUnlock()

	return this.matcher.Match(username, password)
}

// Close stops watching. The Watcher cannot be used afterwards.
func (this *Watcher) Close() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	// The timer itself is kept; an in-flight event could still try to
	// schedule a reload while this method runs.
	if t := this.reloadTimer; t != nil {
		t.Stop()
	}

	if watcher := this.watcher; watcher != nil {
		defer func() {
			this.watcher = nil
		}()
		if err := watcher.Close(); err != nil {
			return err
		}
	}

	return nil
}

func (this *Watcher) watchForChanges(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			l := this.logger().
				With("op", event.Op).
				With("file", this.Filename)

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				this.onError(l, ErrWatchedFileVanished, "")
			} else if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				this.scheduleReload(l)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l := this.logger().
				With("file", this.Filename)
			this.onError(l, err, "error while handling file watcher events")
		}
	}
}

func (this *Watcher) scheduleReload(l log.Logger) {
	this.mutex.RLock()
	defer this.mutex.RUnlock()

	l.Debug("schedule reload of credential file")

	this.reloadTimer.Stop()
	if v := this.SyncThreshold; v != 0 {
		this.reloadTimer.Reset(v)
	} else {
		this.reloadTimer.Reset(DefaultSyncThreshold)
	}
}

func (this *Watcher) reload() {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	l := this.logger()

	start := time.Now()
	if l.IsDebugEnabled() {
		l.Debug("reload credential file...")
	}

	if err := this.matcher.Reload(); err != nil {
		this.onError(l, err, "cannot reload credential file")
		return
	}

	lw := l.With("duration", fields.LazyFunc(func() any { return time.Since(start).Truncate(time.Microsecond).String() }))
	if l.IsDebugEnabled() {
		lw.Info("reload credential file... DONE!")
	} else {
		lw.Info("credential file reloaded")
	}
}

func (this *Watcher) onError(logger log.Logger, err error, detail string) {
	if f := this.OnError; f != nil {
		f(logger, err, detail)
		return
	}

	if detail == "" {
		logger.WithError(err).Error()
		return
	}
	logger.WithError(err).Error(detail)
}

func (this *Watcher) logger() log.Logger {
	if v := this.Logger; v != nil {
		return v
	}
	return log.GetRootLogger()
}
