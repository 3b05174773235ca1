//go:build linux

package capture

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/termkey/termkey/internal/keymap"
	"github.com/termkey/termkey/internal/log"
)

// evdev key transition values.
const (
	keyUp     = 0
	keyDown   = 1
	keyRepeat = 2
)

var buttonIDs = map[evdev.EvCode]int{
	evdev.BTN_LEFT:   keymap.ButtonLeft,
	evdev.BTN_MIDDLE: keymap.ButtonMiddle,
	evdev.BTN_RIGHT:  keymap.ButtonRight,
	evdev.BTN_SIDE:   keymap.ButtonBack,
	evdev.BTN_EXTRA:  keymap.ButtonForward,
}

type evdevSource struct {
	devices []*evdev.InputDevice
	events  chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// Open acquires the given evdev devices, or autodetects key-capable ones
// under /dev/input when none are given, and starts one reader per device.
// Opening no usable device at all is a fatal setup error.
func Open(logger *slog.Logger, raw log.RawLogger, paths ...string) (Source, error) {
	explicit := len(paths) > 0
	if !explicit {
		var err error
		paths, err = detectDevicePaths()
		if err != nil {
			return nil, err
		}
	}

	s := &evdevSource{
		events: make(chan Event, 256),
		done:   make(chan struct{}),
	}
	for _, p := range paths {
		d, err := evdev.OpenWithFlags(p, os.O_RDONLY)
		if err != nil {
			if explicit {
				s.closeDevices()
				return nil, fmt.Errorf("cannot open input device %s: %w", p, err)
			}
			logger.Debug("skipping input device", "device", p, "error", err)
			continue
		}
		if !explicit && !slices.Contains(d.CapableTypes(), evdev.EV_KEY) {
			_ = d.Close()
			continue
		}
		s.devices = append(s.devices, d)
		if name, err := d.Name(); err == nil {
			logger.Info("watching input device", "device", p, "name", name)
		}
	}
	if len(s.devices) == 0 {
		return nil, errors.New("no capturable input devices found (are you in the input group, or root?)")
	}

	for _, d := range s.devices {
		s.wg.Add(1)
		go s.readLoop(d, logger, raw)
	}
	return s, nil
}

func (s *evdevSource) Events() <-chan Event { return s.events }

// Close releases the devices, which unblocks the pending reads, waits for
// the readers to finish and then closes the event channel.
func (s *evdevSource) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.closeDevices()
		s.wg.Wait()
		close(s.events)
	})
	return nil
}

func (s *evdevSource) closeDevices() {
	for _, d := range s.devices {
		_ = d.Close()
	}
}

func (s *evdevSource) readLoop(d *evdev.InputDevice, logger *slog.Logger, raw log.RawLogger) {
	defer s.wg.Done()
	path := d.Path()
	for {
		ev, err := d.ReadOne()
		if err != nil {
			select {
			case <-s.done:
			default:
				logger.Warn("input device read failed", "device", path, "error", err)
			}
			return
		}
		if raw != nil {
			raw.Event(path, evdev.TypeName(ev.Type), uint16(ev.Code), ev.Value)
		}
		for _, out := range translate(ev) {
			select {
			case s.events <- out:
			case <-s.done:
				return
			}
		}
	}
}

// translate normalizes one evdev event. Key auto-repeat is delivered as a
// fresh KeyDown so the repeat counter sees it; wheel ticks become a
// momentary button press.
func translate(ev *evdev.InputEvent) []Event {
	when := time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000)
	switch ev.Type {
	case evdev.EV_KEY:
		if id, ok := buttonIDs[ev.Code]; ok {
			switch ev.Value {
			case keyDown:
				return []Event{{Kind: ButtonDown, Code: keymap.Code(id), When: when}}
			case keyUp:
				return []Event{{Kind: ButtonUp, Code: keymap.Code(id), When: when}}
			}
			return nil
		}
		switch ev.Value {
		case keyDown, keyRepeat:
			return []Event{{Kind: KeyDown, Code: keymap.Code(ev.Code), When: when}}
		case keyUp:
			return []Event{{Kind: KeyUp, Code: keymap.Code(ev.Code), When: when}}
		}
	case evdev.EV_REL:
		if ev.Code != evdev.REL_WHEEL || ev.Value == 0 {
			return nil
		}
		id := keymap.ButtonWheelUp
		if ev.Value < 0 {
			id = keymap.ButtonWheelDown
		}
		return []Event{
			{Kind: ButtonDown, Code: keymap.Code(id), When: when},
			{Kind: ButtonUp, Code: keymap.Code(id), When: when},
		}
	}
	return nil
}

func detectDevicePaths() ([]string, error) {
	const basePath = "/dev/input"
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", basePath, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		paths = append(paths, filepath.Join(basePath, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input devices found under %s", basePath)
	}
	return paths, nil
}
