package assets

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
)

// ConfigWatcher reloads a scene file whenever it changes on disk and
// publishes each successfully decoded snapshot.
type ConfigWatcher struct {
	path string

	mutex    sync.Mutex
	wg       sync.WaitGroup
	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	scenes   chan Scene
	errors   chan error
}

// NewConfigWatcher watches the directory holding path, since editors often
// replace files instead of writing them in place.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := LoaderFor(abs); err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     abs,
		fsnotify: fsWatch,
		scenes:   make(chan Scene),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.start()
	return cw, nil
}

// Scenes delivers a snapshot after every change. Closed by Close.
func (cw *ConfigWatcher) Scenes() <-chan Scene {
	return cw.scenes
}

// Errors delivers decode and watch errors. Errors are dropped while a
// previous one is still unread.
func (cw *ConfigWatcher) Errors() <-chan error {
	return cw.errors
}

func (cw *ConfigWatcher) Path() string {
	return cw.path
}

// Close stops watching and waits for the watch goroutine to exit.
func (cw *ConfigWatcher) Close() error {
	cw.mutex.Lock()
	if cw.isClosed {
		cw.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	cw.isClosed = true
	close(cw.done)
	cw.mutex.Unlock()

	cw.wg.Wait()
	return cw.fsnotify.Close()
}

func (cw *ConfigWatcher) start() {
	defer cw.wg.Done()
	defer close(cw.scenes)
	defer close(cw.errors)

	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			scene, err := LoadScene(cw.path)
			if err != nil {
				cw.reportError(err)
				continue
			}
			core.LogInfo("reloaded %s", cw.path)

			select {
			case cw.scenes <- scene:
			case <-cw.done:
				return
			}

		case err, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			cw.reportError(err)

		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) reportError(err error) {
	core.LogError(err.Error())
	select {
	case cw.errors <- err:
	default:
	}
}
