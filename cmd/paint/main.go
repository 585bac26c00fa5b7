// Package main provides the CLI entry point for rasterpaint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/rasterpaint/pkg/adapters/filesink"
	"github.com/user/rasterpaint/pkg/adapters/ggrenderer"
	"github.com/user/rasterpaint/pkg/adapters/imagecodec"
	"github.com/user/rasterpaint/pkg/adapters/logger"
	"github.com/user/rasterpaint/pkg/adapters/nullsink"
	"github.com/user/rasterpaint/pkg/adapters/osfilesystem"
	"github.com/user/rasterpaint/pkg/adapters/scriptprompter"
	"github.com/user/rasterpaint/pkg/canvas"
	"github.com/user/rasterpaint/pkg/config"
	"github.com/user/rasterpaint/pkg/filters"
	"github.com/user/rasterpaint/pkg/ports"
	"github.com/user/rasterpaint/pkg/script"
	"github.com/user/rasterpaint/pkg/settings"
	"github.com/user/rasterpaint/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "paint",
		Usage:   l10n.T("Headless raster paint engine"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Configuration file (YAML or TOML)"), Category: l10n.T("Configuration")},
			&cli.StringFlag{Name: "settings", Usage: l10n.T("Settings file remembering tool, brush and colors"), Category: l10n.T("Configuration")},
			&cli.BoolFlag{Name: "no-settings", Usage: l10n.T("Do not read or write the settings file"), Category: l10n.T("Configuration")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Write every history snapshot as PNG"), Category: l10n.T("Debug")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     l10n.T("Replay a gesture script and save the result"),
				ArgsUsage: "SCRIPT",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output image path (.png, .jpg, .bmp, .pdf)")},
					&cli.StringFlag{Name: "summary", Usage: l10n.T("Write a session summary to this path (.md or .yaml)")},
				},
				Action: runCommand,
			},
			{
				Name:      "filter",
				Usage:     l10n.T("Apply one filter to an image file"),
				ArgsUsage: "INPUT",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output image path (.png, .jpg, .bmp, .pdf)")},
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: l10n.T("Filter name (blur, sharpen, grayscale, invert, brightness, contrast)")},
					&cli.Float64Flag{Name: "factor", Aliases: []string{"f"}, Value: filters.DefaultFactor, Usage: l10n.T("Brightness or contrast factor (0.0-2.0)")},
				},
				Action: filterCommand,
			},
			{
				Name:  "blank",
				Usage: l10n.T("Write a blank canvas"),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output image path (.png, .jpg, .bmp, .pdf)")},
					&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Canvas width (default from config)")},
					&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Canvas height (default from config)")},
					&cli.StringFlag{Name: "color", Usage: l10n.T("Background color (hex or name)")},
				},
				Action: blankCommand,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Println(l10n.F("rasterpaint version %s", version))
					return nil
				},
			},
		},
	}
}

// session holds the adapters shared by every command.
type session struct {
	cfg      config.Config
	log      ports.Logger
	fs       *osfilesystem.FileSystem
	codec    *imagecodec.Codec
	prompter *scriptprompter.Prompter
	store    *settings.Store
}

func newSession(c *cli.Context) (*session, error) {
	level := ports.ParseLogLevel(c.String("log-level"))
	if c.Bool("quiet") {
		level = ports.LevelQuiet
	}
	var log ports.Logger = logger.NewConsole(level)

	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		log.Debug("Loaded config from %s", path)
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if dir := c.String("debug-dir"); dir != "" {
		cfg.DebugDir = dir
	}

	s := &session{
		cfg:      cfg,
		log:      log,
		fs:       osfilesystem.New(),
		codec:    imagecodec.New(),
		prompter: scriptprompter.New(),
	}

	if !c.Bool("no-settings") {
		path := c.String("settings")
		if path == "" {
			p, err := settings.DefaultPath()
			if err != nil {
				log.Warn("Settings disabled: %s", err)
			}
			path = p
		}
		if path != "" {
			s.store = settings.NewStore(s.fs, path)
		}
	}
	return s, nil
}

// newEngine builds a canvas engine from the session config.
func (s *session) newEngine() (*canvas.Engine, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	engineCfg, err := s.cfg.ToEngineConfig()
	if err != nil {
		return nil, err
	}

	renderer, err := ggrenderer.New(s.cfg.Text.FontSize)
	if err != nil {
		return nil, err
	}

	var sink ports.SnapshotSink
	if s.cfg.Debug {
		if err := s.fs.MkdirAll(s.cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(s.cfg.DebugDir, s.fs, s.codec)
		s.log.Info("Writing snapshots to %s", s.cfg.DebugDir)
	} else {
		sink = nullsink.New()
	}

	return canvas.New(engineCfg, canvas.Deps{
		Renderer:   renderer,
		Codec:      s.codec,
		FileSystem: s.fs,
		Prompter:   s.prompter,
		Sink:       sink,
		Logger:     s.log,
	})
}

func (s *session) restoreSettings(e *canvas.Engine) {
	if s.store == nil {
		return
	}
	st, ok, err := s.store.Load()
	if err != nil {
		s.log.Warn("Failed to read settings: %s", err)
		return
	}
	if !ok {
		return
	}
	if err := st.Apply(e); err != nil {
		s.log.Warn("Some settings were ignored: %s", err)
	}
	s.log.Debug("Restored settings from %s", s.store.Path())
}

func (s *session) persistSettings(e *canvas.Engine) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(settings.Capture(e.State())); err != nil {
		s.log.Warn("Failed to write settings: %s", err)
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context, log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}

func runCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("run needs exactly one SCRIPT argument"))
	}
	scriptPath := c.Args().First()
	output := c.String("output")

	s, err := newSession(c)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(c.Context, s.log)
	defer cancel()

	sc, err := script.Load(s.fs, scriptPath)
	if err != nil {
		s.log.Error("Failed to load script: %s", err)
		return err
	}

	e, err := s.newEngine()
	if err != nil {
		return err
	}
	s.restoreSettings(e)

	s.log.Info("Replaying %s (%d steps)", scriptPath, len(sc.Steps))
	res, err := script.NewRunner(e, s.prompter, s.log).Run(ctx, sc)
	if err != nil {
		s.log.Error("Script stopped: %s", err)
		return err
	}
	if res.Failed > 0 {
		s.log.Warn("%d of %d steps failed", res.Failed, res.Steps)
	}

	if err := e.Save(output); err != nil {
		s.log.Error("Failed to save %s: %s", output, err)
		return err
	}
	s.log.Info("Output saved to %s", output)
	s.persistSettings(e)

	if path := c.String("summary"); path != "" {
		if err := writeSummary(s, e, path, scriptPath, output, res); err != nil {
			s.log.Warn("Failed to write summary: %s", err)
		} else {
			s.log.Info("Summary saved to %s", path)
		}
	}
	return nil
}

func writeSummary(s *session, e *canvas.Engine, path, scriptPath, output string, res script.Result) error {
	errs := make([]string, len(res.Errors))
	for i, se := range res.Errors {
		errs[i] = se.Error()
	}

	var size int64
	if data, err := s.fs.ReadFile(output); err == nil {
		size = int64(len(data))
	}
	format := ""
	if f, err := ports.FormatFromPath(output); err == nil {
		format = f.String()
	}

	w, h := e.Size()
	st := settings.Capture(e.State())
	summary := summarizer.NewBuilder().
		WithSession(summarizer.SessionInfo{
			Script:     scriptPath,
			Steps:      res.Steps,
			Failed:     res.Failed,
			DurationMs: res.Duration.Milliseconds(),
			Actions:    res.Actions,
			Errors:     errs,
		}).
		WithCanvas(summarizer.CanvasInfo{
			Width:     w,
			Height:    h,
			Revision:  e.Revision(),
			Snapshots: e.Snapshots(),
			CanUndo:   e.CanUndo(),
			CanRedo:   e.CanRedo(),
		}).
		WithTools(summarizer.ToolInfo{
			Tool:      st.Tool,
			BrushSize: st.BrushSize,
			Primary:   st.Primary,
			Secondary: st.Secondary,
		}).
		WithOutput(output, format, size).
		Build()

	formatter, err := summarizer.ForPath(path,
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	if err != nil {
		return err
	}
	return summarizer.NewWriter(formatter, s.fs).Write(path, summary)
}

func filterCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("filter needs exactly one INPUT argument"))
	}
	input := c.Args().First()
	output := c.String("output")

	kind, err := filters.ParseKind(c.String("name"))
	if err != nil {
		return err
	}

	s, err := newSession(c)
	if err != nil {
		return err
	}

	// Size the canvas to the input so Open places it 1:1.
	data, err := s.fs.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	img, _, err := s.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}
	s.cfg.Canvas.Width = img.Bounds().Dx()
	s.cfg.Canvas.Height = img.Bounds().Dy()

	e, err := s.newEngine()
	if err != nil {
		return err
	}
	if err := e.Open(input); err != nil {
		return err
	}

	s.log.Info("Applying %s to %s", kind, input)
	if err := e.ApplyFilterFactor(kind, c.Float64("factor")); err != nil {
		s.log.Error("Failed to apply filter: %s", err)
		return err
	}
	if err := e.Save(output); err != nil {
		s.log.Error("Failed to save %s: %s", output, err)
		return err
	}
	s.log.Info("Output saved to %s", output)
	return nil
}

func blankCommand(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	if c.IsSet("width") {
		s.cfg.Canvas.Width = c.Int("width")
	}
	if c.IsSet("height") {
		s.cfg.Canvas.Height = c.Int("height")
	}
	if c.IsSet("color") {
		s.cfg.Canvas.Background = c.String("color")
	}

	e, err := s.newEngine()
	if err != nil {
		return err
	}
	output := c.String("output")
	if err := e.Save(output); err != nil {
		s.log.Error("Failed to save %s: %s", output, err)
		return err
	}
	s.log.Info("Output saved to %s", output)
	return nil
}
