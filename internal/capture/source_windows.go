//go:build windows

package capture

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/termkey/termkey/internal/keymap"
	"github.com/termkey/termkey/internal/log"
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C

	wmQuit = 0x0012

	xButton1 = 1
	xButton2 = 2
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")

	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

type kbdllHookStruct struct {
	VkCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type msllHookStruct struct {
	Pt        struct{ X, Y int32 }
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type msg struct {
	Hwnd    windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// The WH_*_LL hooks are process-global and callback-based, so a single
// active source owns them.
var (
	activeMu sync.Mutex
	active   *hookSource
)

type hookSource struct {
	events   chan Event
	threadID uint32
	raw      log.RawLogger
	once     sync.Once
}

// Open installs low-level keyboard and mouse hooks on a dedicated, locked
// OS thread and pumps its message queue until Close posts WM_QUIT.
func Open(logger *slog.Logger, raw log.RawLogger, paths ...string) (Source, error) {
	if len(paths) > 0 {
		return nil, errors.New("explicit input devices are not supported on windows")
	}

	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return nil, errors.New("input hooks already installed")
	}

	s := &hookSource{
		events: make(chan Event, 256),
		raw:    raw,
	}
	ready := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		tid, _, _ := procGetCurrentThreadId.Call()
		s.threadID = uint32(tid)

		kbHook, _, err := procSetWindowsHookExW.Call(whKeyboardLL, windows.NewCallback(keyboardProc), 0, 0)
		if kbHook == 0 {
			ready <- fmt.Errorf("cannot install keyboard hook: %w", err)
			return
		}
		mouseHook, _, err := procSetWindowsHookExW.Call(whMouseLL, windows.NewCallback(mouseProc), 0, 0)
		if mouseHook == 0 {
			_, _, _ = procUnhookWindowsHookEx.Call(kbHook)
			ready <- fmt.Errorf("cannot install mouse hook: %w", err)
			return
		}
		ready <- nil

		var m msg
		for {
			r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
			if int32(r) <= 0 || m.Message == wmQuit {
				break
			}
		}

		_, _, _ = procUnhookWindowsHookEx.Call(kbHook)
		_, _, _ = procUnhookWindowsHookEx.Call(mouseHook)

		activeMu.Lock()
		active = nil
		activeMu.Unlock()
		close(s.events)
	}()

	if err := <-ready; err != nil {
		return nil, err
	}
	active = s
	logger.Info("installed low-level input hooks")
	return s, nil
}

func (s *hookSource) Events() <-chan Event { return s.events }

// Close asks the hook thread to quit its message loop.
func (s *hookSource) Close() error {
	s.once.Do(func() {
		_, _, _ = procPostThreadMessageW.Call(uintptr(s.threadID), wmQuit, 0, 0)
	})
	return nil
}

// deliver sends without blocking: a hook callback that stalls would degrade
// input for the whole desktop, so a full queue drops the event instead.
func (s *hookSource) deliver(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}

func keyboardProc(nCode, wparam, lparam uintptr) uintptr {
	activeMu.Lock()
	s := active
	activeMu.Unlock()
	if int32(nCode) >= 0 && s != nil {
		kb := (*kbdllHookStruct)(unsafe.Pointer(lparam))
		kind := KeyUp
		if wparam == wmKeyDown || wparam == wmSysKeyDown {
			kind = KeyDown
		}
		if s.raw != nil {
			s.raw.Event("keyboard", kind.String(), uint16(kb.VkCode), int32(kb.ScanCode))
		}
		s.deliver(Event{Kind: kind, Code: keymap.Code(kb.VkCode), When: time.Now()})
	}
	ret, _, _ := procCallNextHookEx.Call(0, nCode, wparam, lparam)
	return ret
}

func mouseProc(nCode, wparam, lparam uintptr) uintptr {
	activeMu.Lock()
	s := active
	activeMu.Unlock()
	if int32(nCode) >= 0 && s != nil {
		ms := (*msllHookStruct)(unsafe.Pointer(lparam))
		now := time.Now()
		if s.raw != nil {
			s.raw.Event("mouse", "message", uint16(wparam), int32(ms.MouseData>>16))
		}
		switch wparam {
		case wmLButtonDown:
			s.deliver(Event{Kind: ButtonDown, Code: keymap.ButtonLeft, When: now})
		case wmLButtonUp:
			s.deliver(Event{Kind: ButtonUp, Code: keymap.ButtonLeft, When: now})
		case wmMButtonDown:
			s.deliver(Event{Kind: ButtonDown, Code: keymap.ButtonMiddle, When: now})
		case wmMButtonUp:
			s.deliver(Event{Kind: ButtonUp, Code: keymap.ButtonMiddle, When: now})
		case wmRButtonDown:
			s.deliver(Event{Kind: ButtonDown, Code: keymap.ButtonRight, When: now})
		case wmRButtonUp:
			s.deliver(Event{Kind: ButtonUp, Code: keymap.ButtonRight, When: now})
		case wmXButtonDown, wmXButtonUp:
			id := keymap.ButtonBack
			if ms.MouseData>>16 == xButton2 {
				id = keymap.ButtonForward
			}
			kind := ButtonDown
			if wparam == wmXButtonUp {
				kind = ButtonUp
			}
			s.deliver(Event{Kind: kind, Code: keymap.Code(id), When: now})
		case wmMouseWheel:
			id := keymap.ButtonWheelUp
			if int16(ms.MouseData>>16) < 0 {
				id = keymap.ButtonWheelDown
			}
			s.deliver(Event{Kind: ButtonDown, Code: keymap.Code(id), When: now})
			s.deliver(Event{Kind: ButtonUp, Code: keymap.Code(id), When: now})
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, nCode, wparam, lparam)
	return ret
}
