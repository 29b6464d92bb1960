// Package menu lists the controls and their current bindings.
package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	engineinput "reynard/pkg/engine/input"
	"reynard/pkg/engine/terminal"
)

// BindingMenuItem represents one action and the codes bound to it.
type BindingMenuItem struct {
	Action engineinput.Action
	Codes  []string
	// NonRebindable is set when every code of the action is fixed.
	NonRebindable bool
}

// GetLabel returns the display label for this binding menu item.
func (b BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", name, codeText)
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// GetMenuItems returns the bindings of every action in menu order.
func GetMenuItems() []BindingMenuItem {
	byAction := engineinput.GetBindingsByAction()
	var items []BindingMenuItem
	for act := engineinput.ActionMoveLeft; act <= engineinput.ActionResetLevel; act++ {
		codes := byAction[act]
		fixed := len(codes) > 0
		for _, c := range codes {
			if !engineinput.IsReserved(c) {
				fixed = false
				break
			}
		}
		items = append(items, BindingMenuItem{Action: act, Codes: codes, NonRebindable: fixed})
	}
	return items
}

var (
	colorTitle  = color.Style{color.FgMagenta, color.OpBold}
	colorSubtle = color.Style{color.FgGray, color.OpBold}
)

// PrintBindings writes the bindings list, coloured when w is a terminal.
func PrintBindings(w io.Writer) {
	styled := terminal.IsTerminal(w)
	title := "Controls"
	if styled {
		title = colorTitle.Sprint(title)
	}
	fmt.Fprintln(w, title)
	for _, item := range GetMenuItems() {
		label := item.GetLabel()
		if styled && item.NonRebindable {
			label = colorSubtle.Sprint(label)
		}
		fmt.Fprintf(w, "  %s\n", label)
	}
}
