// This file is part of romraster.
//
// romraster is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romraster is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romraster.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pm5644/romraster/conversion"
	"github.com/pm5644/romraster/curated"
	"github.com/pm5644/romraster/field"
	"github.com/pm5644/romraster/logger"
	"github.com/pm5644/romraster/modalflag"
	"github.com/pm5644/romraster/paths"
	"github.com/pm5644/romraster/preview"
	"github.com/pm5644/romraster/rom"
	"github.com/pm5644/romraster/scope"
	"github.com/pm5644/romraster/specification"
	"github.com/pm5644/romraster/statsview"
	"github.com/pm5644/romraster/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. the
// preview window must be run on the main thread.
type mainSync struct {
	state chan stateRequest

	// windows sent on this channel are run by the main thread. the result of
	// running the window is returned on previewDone
	preview     chan *preview.Window
	previewDone chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:       make(chan stateRequest),
		preview:     make(chan *preview.Window),
		previewDone: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case win := <-sync.preview:
			sync.previewDone <- win.Run()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// request the preview window and to quit.
func launch(sync *mainSync) {
	sty := newStyles(os.Stdout)

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RECOMPOSE", "GENERATE", "CONVERT", "INFO")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Println(sty.failure(fmt.Sprintf("* error: %v", err)))
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RECOMPOSE":
		err = recompose(md, sync, sty)

	case "GENERATE":
		err = generate(md, sty)

	case "CONVERT":
		err = convert(md, sync, sty)

	case "INFO":
		err = info(md, sty)
	}

	if err != nil {
		fmt.Println(sty.failure(fmt.Sprintf("* error in %s mode: %s", md.String(), err)))
		if curated.Is(err, conversion.DigestMismatch) {
			sync.state <- stateRequest{req: reqQuit, args: 30}
			return
		}
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by more than one mode
type commonFlags struct {
	dir       *string
	out       *string
	prefsFile *string
	prefs     *string
	log       *bool
	stats     *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		dir:       md.AddString("dir", ".", "directory containing the ROM and vector dumps"),
		out:       md.AddString("out", "", "directory for images (default is the -dir directory)"),
		prefsFile: md.AddString("prefsfile", paths.ResourcePath(specification.DefaultPrefsFile), "preferences file (empty for none)"),
		prefs:     md.AddString("prefs", "", "preferences to override (eg. \"calibration.luma.gain::1.82\")"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		stats:     md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// settings creates conversion settings from the common flags and the
// preferences file.
func (cf commonFlags) settings() (conversion.Settings, error) {
	if *cf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	s := conversion.NewSettings(*cf.dir)
	s.Output = *cf.out

	pref, err := loadPreferences(*cf.prefsFile, *cf.prefs)
	if err != nil {
		return s, err
	}
	s.Calibration = pref.Calibration()
	s.Alignment = pref.Alignment()

	return s, nil
}

func loadPreferences(file string, override string) (*specification.Preferences, error) {
	pref, err := specification.NewPreferences(file)
	if err != nil {
		return nil, err
	}
	if override != "" {
		err = pref.Override(override)
		if err != nil {
			return nil, err
		}
	}
	return pref, nil
}

// flags for the scope output
type scopeFlags struct {
	file  *string
	group *string
	rows  *string
}

func addScopeFlags(md *modalflag.Modes) scopeFlags {
	return scopeFlags{
		file:  md.AddString("scope", "", "write raw plane rows to wav file"),
		group: md.AddString("scopegroup", "luma", "channel group for scope: luma, R-Y, B-Y"),
		rows:  md.AddString("scoperows", "0:1", "inclusive range of raw plane rows for scope"),
	}
}

// write the scope file if it has been requested.
func (sf scopeFlags) write(res *conversion.Result) error {
	if *sf.file == "" {
		return nil
	}

	g, err := rom.ParseGroup(*sf.group)
	if err != nil {
		return err
	}

	first, last, err := parseRows(*sf.rows)
	if err != nil {
		return err
	}

	sc, err := scope.New(*sf.file)
	if err != nil {
		return err
	}

	err = sc.AddRows(res.Raw[g], first, last)
	if err != nil {
		return err
	}

	return sc.Write(logger.Allow)
}

// parseRows parses a row range of the form "first:last". A single number is
// a range of one row.
func parseRows(s string) (int, int, error) {
	a, b, found := strings.Cut(s, ":")
	first, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("row range: %w", err)
	}
	if !found {
		return first, first, nil
	}
	last, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("row range: %w", err)
	}
	return first, last, nil
}

// flags for the composite output
type outputFlags struct {
	expect  *string
	preview *bool
	scale   *int
}

func addOutputFlags(md *modalflag.Modes) outputFlags {
	return outputFlags{
		expect:  md.AddString("expect", "", "expected digest of the composite image"),
		preview: md.AddBool("preview", false, "show the composite image in a window"),
		scale:   md.AddInt("scale", 1, "preview window scaling"),
	}
}

func (of outputFlags) finish(res *conversion.Result, sync *mainSync) error {
	if *of.expect != "" {
		err := res.Verify(*of.expect)
		if err != nil {
			return err
		}
	}

	if *of.preview {
		win, err := preview.NewWindow(logger.Allow, res.Composite, *of.scale, version.ApplicationName)
		if err != nil {
			return err
		}
		sync.preview <- win
		return <-sync.previewDone
	}

	return nil
}

func noArguments(md *modalflag.Modes) error {
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	return nil
}

func recompose(md *modalflag.Modes, sync *mainSync, sty styles) error {
	md.NewMode()

	cf := addCommonFlags(md)
	of := addOutputFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	s, err := cf.settings()
	if err != nil {
		return err
	}

	if *cf.stats {
		defer statsview.Launch(os.Stdout)()
	}

	con, err := conversion.NewConversion(logger.Allow, s)
	if err != nil {
		return err
	}

	res, err := con.Recompose()
	if err != nil {
		return err
	}

	sty.report(os.Stdout, md.String(), res)

	return of.finish(res, sync)
}

func generate(md *modalflag.Modes, sty styles) error {
	md.NewMode()

	cf := addCommonFlags(md)
	addressing := md.AddString("addressing", field.PerVector.String(), "segment addressing: vector, span")
	sf := addScopeFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	s, err := cf.settings()
	if err != nil {
		return err
	}
	s.Addressing, err = field.ParseAddressing(*addressing)
	if err != nil {
		return err
	}

	if *cf.stats {
		defer statsview.Launch(os.Stdout)()
	}

	con, err := conversion.NewConversion(logger.Allow, s)
	if err != nil {
		return err
	}

	res, err := con.Generate()
	if err != nil {
		return err
	}

	sty.report(os.Stdout, md.String(), res)

	return sf.write(res)
}

func convert(md *modalflag.Modes, sync *mainSync, sty styles) error {
	md.NewMode()

	cf := addCommonFlags(md)
	addressing := md.AddString("addressing", field.PerVector.String(), "segment addressing: vector, span")
	sf := addScopeFlags(md)
	of := addOutputFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	s, err := cf.settings()
	if err != nil {
		return err
	}
	s.Addressing, err = field.ParseAddressing(*addressing)
	if err != nil {
		return err
	}

	if *cf.stats {
		defer statsview.Launch(os.Stdout)()
	}

	con, err := conversion.NewConversion(logger.Allow, s)
	if err != nil {
		return err
	}

	res, err := con.Convert()
	if err != nil {
		return err
	}

	sty.report(os.Stdout, md.String(), res)

	err = sf.write(res)
	if err != nil {
		return err
	}

	return of.finish(res, sync)
}

func info(md *modalflag.Modes, sty styles) error {
	md.NewMode()

	prefsFile := md.AddString("prefsfile", paths.ResourcePath(specification.DefaultPrefsFile), "preferences file (empty for none)")
	prefs := md.AddString("prefs", "", "preferences to override")
	save := md.AddBool("save", false, "save the effective preferences to the preferences file")
	memviz := md.AddString("memviz", "", "write graphviz dump of the settings to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	pref, err := loadPreferences(*prefsFile, *prefs)
	if err != nil {
		return err
	}

	s := conversion.NewSettings(".")
	s.Calibration = pref.Calibration()
	s.Alignment = pref.Alignment()

	sty.info(os.Stdout, s)

	if *save {
		if *prefsFile == "" {
			return fmt.Errorf("no preferences file to save to")
		}
		err = pref.Save()
		if err != nil {
			return err
		}
		fmt.Printf("preferences saved to %s\n", *prefsFile)
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		s.DumpStructure(f)
		fmt.Printf("settings structure written to %s\n", *memviz)
	}

	return nil
}
