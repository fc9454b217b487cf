// postal is a small demonstration front end for the binding: it parses or
// expands a single address given on the command line. It needs a libpostal
// installation with its data files; build with the "libpostal" tag.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/kodemartin/postal/address"
	"github.com/kodemartin/postal/expand"
	"github.com/kodemartin/postal/libpostal"
)

func main() {
	app := &cli.App{
		Name:  "postal",
		Usage: "parse and normalize postal addresses with libpostal",
		Commands: []*cli.Command{
			parseCommand(),
			expandCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "split an address into labeled components",
		ArgsUsage: "ADDRESS",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "language", Usage: "ISO language code hint"},
			&cli.StringFlag{Name: "country", Usage: "ISO country code hint"},
		},
		Action: func(ctx *cli.Context) error {
			text := strings.Join(ctx.Args().Slice(), " ")
			if text == "" {
				return errors.New("no address given")
			}

			token, err := libpostal.Setup(libpostal.Parser)
			if err != nil {
				return errors.Wrap(err, "initializing libpostal")
			}
			defer token.Close()

			parsed, err := address.ParseWithOptions(text, address.Options{
				Language: ctx.String("language"),
				Country:  ctx.String("country"),
			})
			if err != nil {
				return errors.Wrap(err, "parsing address")
			}

			label := color.New(color.FgCyan)
			for _, lt := range parsed {
				label.Printf("%s: ", lt.Label)
				fmt.Println(lt.Token)
			}
			return nil
		},
	}
}

func expandCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "normalize an address into canonical variants",
		ArgsUsage: "ADDRESS",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "language", Usage: "restrict expansion to these ISO language codes"},
		},
		Action: func(ctx *cli.Context) error {
			text := strings.Join(ctx.Args().Slice(), " ")
			if text == "" {
				return errors.New("no address given")
			}

			token, err := libpostal.Setup(libpostal.Expander)
			if err != nil {
				return errors.Wrap(err, "initializing libpostal")
			}
			defer token.Close()

			variants, err := expand.Expand(text, ctx.StringSlice("language")...)
			if err != nil {
				return errors.Wrap(err, "expanding address")
			}

			for _, v := range variants {
				fmt.Println(v)
			}
			return nil
		},
	}
}
