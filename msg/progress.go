package msg

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Cylon is the frame set of the progress spinner.
var Cylon = []string{
	" 〖        ◼︎〗",
	" 〖       ◼︎ 〗",
	" 〖      ◼︎▫︎ 〗",
	" 〖     ◼︎ ▫︎▫︎〗",
	" 〖    ◼︎ ▫︎▫︎ 〗",
	" 〖   ◼︎ ▫︎▫︎  〗",
	" 〖  ◼︎ ▫︎▫︎   〗",
	" 〖 ◼︎ ▫︎▫︎    〗",
	" 〖◼︎ ▫︎▫︎     〗",
	" 〖◼︎        〗",
	" 〖▫︎◼︎       〗",
	" 〖▫︎▫︎◼︎      〗",
	" 〖 ▫︎▫︎◼︎     〗",
	" 〖  ▫︎▫︎◼︎    〗",
	" 〖   ▫︎▫︎◼︎   〗",
	" 〖    ▫︎▫︎◼︎  〗",
	" 〖      ▫︎▫︎◼︎〗",
}

// CylonInterval is the delay between two spinner frames.
const CylonInterval = 100 * time.Millisecond

// StartProgress starts the progress meter of the Default Messenger.
func StartProgress(msg string) {
	Default.InProgress = true
	Default.meter.Start(msg)
}

// Progress updates the message shown by a running progress meter.
func Progress(msg string, v ...interface{}) {
	if Default.InProgress {
		Default.meter.Message(fmt.Sprintf(msg, v...))
	}
}

// StopProgress stops the progress meter and prints msg, if not empty.
func StopProgress(msg string) {
	Default.meter.Done(msg)
	Default.InProgress = false
}

// spinnerMeter animates a spinner on Stderr. When Stderr is not a terminal file
// the spinner stays inactive and every message goes to Info instead.
type spinnerMeter struct {
	m *Messenger
	s *spinner.Spinner
}

func newSpinnerMeter(m *Messenger) *spinnerMeter {
	return &spinnerMeter{m: m}
}

func (p *spinnerMeter) Start(msg string) {
	f, ok := p.m.Stderr.(*os.File)
	if !ok {
		p.m.Info("%s", msg)
		return
	}
	p.s = spinner.New(Cylon, CylonInterval, spinner.WithWriter(f))
	if !p.m.NoColor {
		_ = p.s.Color("red")
	}
	p.s.Suffix = " " + msg
	p.s.Start()
	if !p.s.Active() {
		p.m.Info("%s", msg)
	}
}

func (p *spinnerMeter) Message(msg string) {
	if p.s == nil || !p.s.Active() {
		p.m.Info("%s", msg)
		return
	}
	p.s.Lock()
	p.s.Suffix = " " + msg
	p.s.Unlock()
}

func (p *spinnerMeter) Done(msg string) {
	if p.s != nil {
		p.s.Stop()
		p.s = nil
	}
	if msg != "" {
		p.m.Info("%s", msg)
	}
}
