package main

import (
	"fmt"
	. "github.com/ZenLiuCN/cudrv"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli/v2"
	"log"
	"os"
)

func main() {
	app := cli.NewApp()
	app.Usage = "cuda driver probe"
	app.Action = version
	app.Name = "Probe"
	app.Description = "inspect the installed cuda driver through the lazy binding layer"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
	}
	app.Before = func(ctx *cli.Context) error {
		allow := level.AllowWarn()
		if ctx.Bool("debug") {
			allow = level.AllowDebug()
		}
		SetLogger(level.NewFilter(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), allow))
		return nil
	}
	app.Args = true
	app.Commands = []*cli.Command{
		{Name: "version", Action: version, Usage: "report the installed driver version"},
		{Name: "check",
			Action: check,
			Usage:  "check which entry points resolve, all of them or the named ones",
			Args:   true,
		},
		{Name: "info",
			Action: info,
			Usage:  "report device properties",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "device", Aliases: []string{"n"}, Usage: "device ordinal"},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func version(ctx *cli.Context) error {
	v := DriverVersion()
	if v < 0 {
		return fmt.Errorf("no cuda driver answered")
	}
	fmt.Printf("cuda driver %s (%d)\n", VersionString(v), v)
	return nil
}

func check(ctx *cli.Context) error {
	reg := make(map[string]Version)
	var names []string
	for _, s := range Symbols() {
		reg[s.Name] = s.Version
	}
	if names = ctx.Args().Slice(); len(names) == 0 {
		for _, s := range Symbols() {
			names = append(names, s.Name)
		}
	}
	missing := 0
	for _, n := range names {
		v, ok := reg[n]
		if !ok {
			v = CUDA11
		}
		state := "ok"
		if !Available(n, v) {
			state = "missing"
			missing++
		}
		fmt.Printf("%-44s %-6s %s\n", n, v, state)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d entry points missing", missing, len(names))
	}
	return nil
}

func info(ctx *cli.Context) error {
	if DriverVersion() < 0 {
		return fmt.Errorf("no cuda driver answered")
	}
	Initialize()
	dev := Device(ctx.Int("device"))
	buf := make([]byte, 256)
	if r := DeviceGetName(buf, dev); r != Success {
		return fmt.Errorf("device name: %w", r.Err())
	}
	fmt.Printf("device %d: %s\n", dev, GoString(buf))
	var major, minor, sm int32
	if r := DeviceGetAttribute(&major, AttrComputeCapabilityMajor, dev); r != Success {
		return fmt.Errorf("compute capability: %w", r.Err())
	}
	if r := DeviceGetAttribute(&minor, AttrComputeCapabilityMinor, dev); r != Success {
		return fmt.Errorf("compute capability: %w", r.Err())
	}
	if r := DeviceGetAttribute(&sm, AttrMultiprocessorCount, dev); r != Success {
		return fmt.Errorf("multiprocessor count: %w", r.Err())
	}
	fmt.Printf("compute capability: %d.%d\n", major, minor)
	fmt.Printf("multiprocessors: %d\n", sm)
	return nil
}
