package main

import (
	"fmt"
	"os"

	golog "log"

	"github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dsoprea/go-lnk"
)

const (
	errorParse = 1
	errorUsage = 2
)

type rootParameters struct {
	ShowAll  bool   `short:"a" long:"all" description:"Show more fields"`
	Yaml     bool   `short:"y" long:"yaml" description:"Show output as YAML"`
	Browse   bool   `short:"g" long:"gui" description:"Show output as flat browse rows"`
	Codepage string `short:"c" long:"codepage" description:"Decode non-Unicode strings using this codepage (by name prefix)"`
	LogFile  string `short:"l" long:"log-file" description:"Append parse warnings to this rotated log file"`

	Positional struct {
		Files []string `positional-arg-name:"file"`
	} `positional-args:"true"`
}

var (
	rootArguments = new(rootParameters)
)

func run() int {
	p := flags.NewParser(rootArguments, flags.Default)

	_, err := p.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok == true && flagsErr.Type == flags.ErrHelp {
			return 0
		}

		return errorUsage
	}

	if len(rootArguments.Positional.Files) == 0 {
		p.WriteHelp(os.Stderr)
		return errorUsage
	}

	if rootArguments.Yaml == false && rootArguments.Browse == false {
		rootArguments.Yaml = true
	}

	level := lnk.LevelNormal
	if rootArguments.ShowAll == true {
		level = lnk.LevelDebug
	}

	codecs := lnk.NewCodecFactory()

	var codec *lnk.Codec
	if rootArguments.Codepage != "" {
		codec = codecs.GetByName(rootArguments.Codepage)
		if codec == nil {
			fmt.Fprintf(os.Stderr, "codepage [%s] does not uniquely match a supported codepage\n", rootArguments.Codepage)
			return errorUsage
		}
	}

	var warnLog *golog.Logger
	if rootArguments.LogFile != "" {
		warnLog = golog.New(&lumberjack.Logger{
			Filename:   rootArguments.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
		}, "", golog.LstdFlags)
	}

	var yamlRenderer *lnk.YamlRenderer
	if rootArguments.Yaml == true {
		yamlRenderer = lnk.NewYamlRenderer(os.Stdout, codec, level)
		defer yamlRenderer.Close()
	}

	for _, filepath := range rootArguments.Positional.Files {
		parser, err := lnk.NewParser(filepath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", filepath, err.Error())
			return errorParse
		}

		err = parser.Parse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", filepath, err.Error())
			return errorParse
		}

		if warnLog != nil {
			for _, warning := range parser.Warnings() {
				warnLog.Printf("%s: %s", filepath, warning)
			}
		}

		output := parser.Output()

		if yamlRenderer != nil {
			err := yamlRenderer.Render(output, filepath)
			log.PanicIf(err)
		}

		if rootArguments.Browse == true {
			br := lnk.NewBrowseRenderer(os.Stdout, codec, level)

			err := br.Render(output)
			log.PanicIf(err)
		}
	}

	return 0
}

func main() {
	defer func() {
		if state := recover(); state != nil {
			err := log.Wrap(state.(error))
			log.PrintError(err)
			os.Exit(errorParse)
		}
	}()

	os.Exit(run())
}
