package main

import uv "github.com/charmbracelet/ultraviolet"

// binding maps key names, as understood by uv.KeyPressEvent.MatchString,
// to a camera control.
type binding struct {
	keys    []string
	control control
}

var bindings = []binding{
	{[]string{"w"}, control{Dolly: moveStep}},
	{[]string{"s"}, control{Dolly: -moveStep}},
	{[]string{"d"}, control{Strafe: moveStep}},
	{[]string{"a"}, control{Strafe: -moveStep}},
	{[]string{"left"}, control{Yaw: turnStep}},
	{[]string{"right"}, control{Yaw: -turnStep}},
	{[]string{"up"}, control{Lift: moveStep}},
	{[]string{"down"}, control{Lift: -moveStep}},
}

func controlFor(ev uv.KeyPressEvent) (control, bool) {
	for _, b := range bindings {
		if ev.MatchString(b.keys...) {
			return b.control, true
		}
	}
	return control{}, false
}
