/*
mlcli is an interactive inspection tool for label encoding: it loads font
bundles from an encoding archive and lets you classify and transcode label
text the way the tiling pipeline would.

	mlcli -bundles pgf-encoding.zip -load NotoSansDevanagari-Regular:1:Devanagari

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/ajacombs/maplabel/core"
	"github.com/ajacombs/maplabel/core/font"
	"github.com/ajacombs/maplabel/core/font/fontregistry"
	"github.com/ajacombs/maplabel/core/script"
	"github.com/ajacombs/maplabel/engine/names"
	"github.com/ajacombs/maplabel/engine/textenc"
	"github.com/ajacombs/maplabel/engine/tilemeta"
)

// tracer traces with key 'maplabel.cli'
func tracer() tracing.Trace {
	return tracing.Select("maplabel.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.maplabel.cli":    "Info",
		"trace.maplabel.font":   "Info",
		"trace.maplabel.script": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	bundles := flag.String("bundles", "", "Path to the bundle archive (zip)")
	load := flag.String("load", "", "Bundles to load: Name:version:Script[;...]")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the map-label CLI")
	//
	// load phase: fill and freeze the registry before any query
	reg := fontregistry.NewRegistry()
	if *bundles != "" {
		reg.SetArchivePath(*bundles)
		if err := loadBundles(reg, *load); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	reg.Freeze()
	reg.LogBundleList()
	//
	// set up REPL
	repl, err := readline.New("maplabel > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl: repl,
		reg:  reg,
		enc:  textenc.NewEncoder(reg),
	}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadBundles parses "Name:version:Script" specs, semicolon-separated.
func loadBundles(reg *fontregistry.Registry, specs string) error {
	for _, spec := range strings.Split(specs, ";") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return core.Error(core.EINVALID, "bundle spec needs Name:version:Script, got %q", spec)
		}
		if err := reg.LoadBundle(parts[0], parts[1], script.Script(parts[2])); err != nil {
			return err
		}
	}
	return nil
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	reg  *fontregistry.Registry
	enc  *textenc.Encoder
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		if quit := intp.execute(cmd, arg); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd, arg string) (quit bool) {
	switch cmd {
	case "quit":
		return true
	case "help":
		printHelp()
	case "classify":
		pterm.Printf("script = %s\n", script.Classify(arg))
	case "encode":
		intp.encode(arg)
	case "scripts":
		pterm.Printf("loaded scripts: %v\n", intp.reg.Scripts())
	case "meta":
		intp.meta(script.Script(arg))
	case "metadata":
		for key, value := range tilemeta.ArchiveMetadata(intp.reg, names.DefaultPrefix) {
			pterm.Printf("%s = %s\n", key, value)
		}
	case "font":
		intp.font(script.Script(arg))
	default:
		pterm.Error.Printf("unknown command %q, try help\n", cmd)
	}
	return false
}

func printHelp() {
	pterm.Println(`commands:
  classify <text>    classify text by script
  encode <text>      classify and transcode text
  scripts            list loaded scripts
  meta <script>      show bundle metadata for a script
  metadata           show the archive metadata block
  font <script>      locate the bundle's font among installed fonts
  quit               exit (or <ctrl>D)`)
}

func (intp *Intp) encode(text string) {
	scr := script.Classify(text)
	pterm.Printf("script = %s\n", scr)
	encoded, ok := intp.enc.Encode(text, scr)
	if !ok {
		pterm.Info.Printf("no bundle loaded for %s, nothing to encode\n", scr)
		return
	}
	tokens := make([]int, 0, len(encoded))
	for _, r := range encoded {
		tokens = append(tokens, font.RuneToken(r))
	}
	pterm.Printf("tokens  = %v\n", tokens)
	pterm.Printf("wire    = %q\n", encoded)
	if strings.ContainsRune(encoded, font.PlaceholderRune) {
		pterm.Info.Println("input is only partially covered by the bundle table")
	}
}

func (intp *Intp) meta(scr script.Script) {
	if !intp.reg.HasScript(scr) {
		pterm.Error.Printf("no bundle loaded for script %q\n", scr)
		return
	}
	name, version, err := intp.reg.Metadata(scr)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	style, weight := font.GuessStyleAndWeight(name)
	pterm.Printf("font    = %s\n", name)
	pterm.Printf("version = %s\n", version)
	pterm.Printf("style   = %d, weight = %d\n", style, weight)
}
