package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/World-hackr/Advance-stacked-encoding/internal/envelope"
	"github.com/World-hackr/Advance-stacked-encoding/internal/player"
	"github.com/World-hackr/Advance-stacked-encoding/internal/render"
	"github.com/World-hackr/Advance-stacked-encoding/internal/session"
	"github.com/World-hackr/Advance-stacked-encoding/internal/synth"
	"github.com/World-hackr/Advance-stacked-encoding/internal/util"
	"github.com/World-hackr/Advance-stacked-encoding/internal/wave"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
)

type options struct {
	inputs   []string
	gen      string
	freq     float64
	spc      int
	periods  int
	envs     []string
	strokes  []string
	offset   float64
	mode     string
	outDir   string
	preview  bool
	bgColor  string
	posColor string
	negColor string
}

func main() {
	var opts options
	var inList, envList, strokeList string

	flag.StringVar(&inList, "in", "", "comma-separated audio files to edit (.wav, .mp3, .flac, .ogg)")
	flag.StringVar(&opts.gen, "gen", "", "generate a source wave instead: sine, square, triangle or sawtooth")
	flag.Float64Var(&opts.freq, "freq", 0, "generated wave frequency in Hz (0 uses the preset)")
	flag.IntVar(&opts.spc, "spc", 0, "generated samples per cycle (0 uses the preset)")
	flag.IntVar(&opts.periods, "periods", 0, "generated period count (0 uses the preset)")
	flag.StringVar(&envList, "env", "", "comma-separated envelope tables, one per input")
	flag.StringVar(&strokeList, "strokes", "", "comma-separated stroke scripts, one per input")
	flag.Float64Var(&opts.offset, "offset", 0, "vertical envelope offset")
	flag.StringVar(&opts.mode, "mode", "direct", "synthesis strategy: direct or peak")
	flag.StringVar(&opts.outDir, "out", "", "output folder (default: named after the first input)")
	flag.BoolVar(&opts.preview, "preview", false, "play each modified wave when done")
	flag.StringVar(&opts.bgColor, "bg", "black", "plot background color")
	flag.StringVar(&opts.posColor, "pos", "vibrant-green", "positive trace color")
	flag.StringVar(&opts.negColor, "neg", "vibrant-green", "negative trace color")
	flag.Parse()

	opts.inputs = splitList(inList)
	opts.envs = splitList(envList)
	opts.strokes = splitList(strokeList)

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	strat, err := pickStrategy(opts.mode)
	if err != nil {
		return err
	}
	theme, err := pickTheme(opts)
	if err != nil {
		return err
	}

	sources, err := loadSources(opts)
	if err != nil {
		return err
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = sources[0].Name
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output folder: %w", err)
	}

	sess := session.New()
	for i, src := range sources {
		id := strconv.Itoa(i + 1)
		slot, err := sess.Add(id, src)
		if err != nil {
			return err
		}
		if opts.offset != 0 {
			slot.Env.SetOffset(opts.offset)
		}
		if p := listEntry(opts.envs, i); p != "" {
			if err := loadEnvelopeInto(slot.Env, p, src.Len()); err != nil {
				return err
			}
		}
		if p := listEntry(opts.strokes, i); p != "" {
			if err := replayStrokeFile(sess, id, p); err != nil {
				return err
			}
		}
	}

	fmt.Println(headerStyle.Render("=== Envelope synthesis ==="))
	for i, src := range sources {
		id := strconv.Itoa(i + 1)
		if err := processWave(sess.Slot(id), i+1, outDir, strat, theme, opts.preview); err != nil {
			return fmt.Errorf("waveform %d (%s): %w", i+1, src.Name, err)
		}
	}
	fmt.Printf("%s %s\n", labelStyle.Render("Output folder:"), pathStyle.Render(outDir))
	return nil
}

func processWave(slot *session.Slot, n int, outDir string, strat synth.Strategy, theme render.Theme, preview bool) error {
	src := slot.Source

	modified, err := strat.Apply(src.Samples, slot.Env)
	if err != nil {
		return err
	}

	// The drawn offset is a display aid; direct-substitution audio is
	// exported without the DC shift.
	audio := modified
	if strat.Name() == "direct" {
		audio = synth.StripOffset(modified, slot.Env.Offset())
	}

	envPath := filepath.Join(outDir, fmt.Sprintf("envelope_%d.csv", n))
	if err := slot.Env.SaveTable(envPath); err != nil {
		return err
	}

	wavPath := filepath.Join(outDir, fmt.Sprintf("%d_future_%s.wav", n, src.Name))
	if err := wave.EncodeWAV(wavPath, src.SampleRate, audio); err != nil {
		return err
	}

	if pr, ok := strat.(synth.PeakRescale); ok {
		factors, err := pr.Factors(src.Samples, slot.Env)
		if err != nil {
			return err
		}
		peakPath := filepath.Join(outDir, fmt.Sprintf("peaks_%d.csv", n))
		if err := synth.SavePeakTable(peakPath, factors); err != nil {
			return err
		}
	}

	plots := []struct {
		name string
		save func(string) error
	}{
		{fmt.Sprintf("final_drawing_%d.png", n), func(p string) error {
			return render.SaveDrawing(p, src.Samples, slot.Env, theme)
		}},
		{fmt.Sprintf("natural_lang_%d.png", n), func(p string) error {
			return render.SaveNatural(p, modified, theme)
		}},
		{fmt.Sprintf("wave_comparison_%d.png", n), func(p string) error {
			return render.SaveComparison(p, src.Samples, modified, theme)
		}},
	}
	for _, pl := range plots {
		if err := pl.save(filepath.Join(outDir, pl.name)); err != nil {
			return err
		}
	}

	label := src.Name
	if src.Meta.Title != "" {
		label = src.Meta.Title
		if src.Meta.Artist != "" {
			label = src.Meta.Artist + " - " + src.Meta.Title
		}
	}
	dur := util.SampleDuration(src.SampleRate, src.Len())
	fmt.Printf("%s %s (%d samples @ %d Hz, %s) -> %s\n",
		labelStyle.Render(fmt.Sprintf("[%d]", n)),
		label, src.Len(), src.SampleRate, util.FormatDuration(dur),
		pathStyle.Render(filepath.Base(wavPath)))

	if preview {
		if err := player.Preview(src.SampleRate, audio); err != nil {
			return fmt.Errorf("previewing: %w", err)
		}
	}
	return nil
}

func loadSources(opts options) ([]*wave.Source, error) {
	if opts.gen != "" {
		if len(opts.inputs) > 0 {
			return nil, fmt.Errorf("-in and -gen are mutually exclusive")
		}
		shape, err := wave.ParseShape(opts.gen)
		if err != nil {
			return nil, err
		}
		preset := wave.DefaultPreset(shape)
		if opts.freq > 0 {
			preset.Freq = opts.freq
		}
		if opts.spc > 0 {
			preset.SamplesPerCycle = opts.spc
		}
		if opts.periods > 0 {
			preset.Periods = opts.periods
		}
		src, err := preset.Generate()
		if err != nil {
			return nil, err
		}
		return []*wave.Source{src}, nil
	}

	if len(opts.inputs) == 0 {
		return nil, fmt.Errorf("no input: pass -in file.wav or -gen sine (supported inputs: %s)",
			wave.SupportedExtsList())
	}
	sources := make([]*wave.Source, 0, len(opts.inputs))
	for _, path := range opts.inputs {
		if !wave.IsSupportedExt(filepath.Ext(path)) {
			return nil, fmt.Errorf("unsupported format %s (supported: %s)",
				filepath.Ext(path), wave.SupportedExtsList())
		}
		src, err := wave.Load(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// loadEnvelopeInto reads a saved table and installs it as the live envelope.
func loadEnvelopeInto(env *envelope.Envelope, path string, n int) error {
	tbl, hasOffset, err := envelope.LoadTable(path)
	if err != nil {
		return err
	}
	if tbl.Len() != n {
		return fmt.Errorf("%s: envelope table has %d rows, want %d", path, tbl.Len(), n)
	}
	copy(env.Positive(), tbl.Positive())
	copy(env.Negative(), tbl.Negative())
	// a stored offset wins over the flag, including a stored zero
	if hasOffset {
		env.SetOffset(tbl.Offset())
	}
	return nil
}

func pickStrategy(mode string) (synth.Strategy, error) {
	switch strings.ToLower(mode) {
	case "direct":
		return synth.DirectSubstitution{}, nil
	case "peak":
		return synth.PeakRescale{}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want direct or peak)", mode)
	}
}

func pickTheme(opts options) (render.Theme, error) {
	theme := render.DefaultTheme()
	for _, c := range []struct {
		val string
		dst *render.RGB
	}{
		{opts.bgColor, &theme.Background},
		{opts.posColor, &theme.Positive},
		{opts.negColor, &theme.Negative},
	} {
		rgb, err := render.ParseColor(c.val)
		if err != nil {
			return theme, err
		}
		*c.dst = rgb
	}
	return theme, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func listEntry(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
