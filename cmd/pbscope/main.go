package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/pbscope/internal/config"
	"github.com/danmuck/pbscope/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pbscope: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	app := kingpin.New("pbscope", "Decode protobuf bytes without a schema.")
	app.UsageWriter(stdout)
	app.Terminate(nil)

	var d decodeCommand
	decodeCmd := app.Command("decode", "Decode one or more protobuf payloads.").Default()
	d.register(decodeCmd)

	configCmd := app.Command("config", "Configuration helpers.")
	initCmd := configCmd.Command("init", "Write a configuration template.")
	initOutput := initCmd.Flag("output", "Template path.").Short('o').Default("pbscope.toml").String()
	initForce := initCmd.Flag("force", "Overwrite an existing file.").Bool()

	cmd, err := app.Parse(args)
	if err != nil {
		return err
	}
	switch cmd {
	case decodeCmd.FullCommand():
		return d.run(stdout)
	case initCmd.FullCommand():
		if err := config.WriteTemplate(*initOutput, *initForce); err != nil {
			return err
		}
		log.Info().Str("path", *initOutput).Msg("wrote config template")
		return nil
	default:
		return nil
	}
}
