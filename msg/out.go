package msg

import "github.com/fatih/color"

// Code is a terminal color understood by Color.
type Code color.Attribute

// These constants map to the colors used by the message prefixes.
const (
	Blue   = Code(color.FgBlue)
	Red    = Code(color.FgRed)
	Green  = Code(color.FgGreen)
	Yellow = Code(color.FgYellow)
	Cyan   = Code(color.FgCyan)
	Pink   = Code(color.FgHiMagenta)
)

// Color returns a string in a certain color. The first argument is one of the
// constants above.
//
// The following will print the string "Foo" in yellow:
//     fmt.Print(Color(Yellow, "Foo"))
func (m *Messenger) Color(code Code, msg string) string {
	if m.NoColor {
		return msg
	}
	c := color.New(color.Attribute(code))
	c.EnableColor()
	return c.Sprint(msg)
}
