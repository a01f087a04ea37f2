package main

import (
	"github.com/flopp/go-findfont"
	"github.com/pterm/pterm"

	"github.com/ajacombs/maplabel/core/script"
)

// font resolves a bundle's display name against the fonts installed on
// this machine, for previewing labels with the same face the client uses.
func (intp *Intp) font(scr script.Script) {
	if !intp.reg.HasScript(scr) {
		pterm.Error.Printf("no bundle loaded for script %q\n", scr)
		return
	}
	name, _, err := intp.reg.Metadata(scr)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	path, err := findfont.Find(name + ".ttf")
	if err != nil {
		pterm.Info.Printf("font %s is not installed on this system\n", name)
		return
	}
	pterm.Printf("font    = %s\n", name)
	pterm.Printf("path    = %s\n", path)
}
