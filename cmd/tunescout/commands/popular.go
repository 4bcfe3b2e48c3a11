package commands

import (
	"fmt"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"tunescout/internal/core/popular"
	"tunescout/internal/core/search"
	"tunescout/internal/services"
	"tunescout/internal/shared"
)

// NewPopularCommand creates the popular tracks command
func NewPopularCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Show popular tracks.",
		Long: `Show popular tracks from TheAudioDB's most loved list.

When that list is empty the tracks are sampled from the top tracks of randomly drawn
well known artists. --sample skips the curated list and samples directly.`,
		Args: cobra.NoArgs,
		RunE: runPopularCommand,
	}

	cmd.Flags().Int("size", 6, "Number of artists to sample")
	cmd.Flags().Int("per-artist", 2, "Tracks kept per sampled artist")
	cmd.Flags().String("genre-bias", "", "Prefer sampled tracks whose genre contains this text")
	cmd.Flags().String("genre", "", "Keep tracks whose genre contains this text")
	cmd.Flags().String("year", "", "Keep tracks whose release year starts with this text")
	cmd.Flags().Uint64("seed", 0, "Random seed for artist sampling (0 picks one)")
	cmd.Flags().Bool("sample", false, "Sample artists without asking for the most loved list")
	cmd.Flags().Bool("json", false, "Print results as JSON")

	return cmd
}

func runPopularCommand(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetUint64("seed")
	_, container, err := initConfigAndServices(cmd, services.Options{Seed: seed})
	if err != nil {
		return err
	}
	defer container.Close()

	popularArgs := &shared.PopularArgs{}
	popularArgs.Size, _ = cmd.Flags().GetInt("size")
	popularArgs.PerArtist, _ = cmd.Flags().GetInt("per-artist")
	popularArgs.GenreBias, _ = cmd.Flags().GetString("genre-bias")

	query := shared.Query{Popular: true, PopularArgs: popularArgs}
	query.Genre, _ = cmd.Flags().GetString("genre")
	query.Year, _ = cmd.Flags().GetString("year")

	asJSON, _ := cmd.Flags().GetBool("json")
	if !asJSON && shared.IsTTY() {
		bar := attachProgressBar(container.Sampler, popularArgs.Size)
		defer bar.finish()
	}

	if sampleOnly, _ := cmd.Flags().GetBool("sample"); sampleOnly {
		tracks := container.Sampler.PopularSample(cmd.Context(), *popularArgs)
		tracks = search.FilterYear(search.FilterGenre(tracks, query.Genre), query.Year)
		return renderTracks(cmd, container, tracks)
	}
	return runQuery(cmd, container, query)
}

// lazyBar starts a progress bar on the first sampled artist, so nothing is drawn
// when the most loved list answers the query. It finishes itself on the last artist.
type lazyBar struct {
	mu    sync.Mutex
	total int
	done  int
	bar   *pb.ProgressBar
}

func attachProgressBar(sampler *popular.Sampler, size int) *lazyBar {
	if size <= 0 {
		size = popular.DefaultSize
	}
	lb := &lazyBar{total: min(size, len(popular.SeedArtists()))}
	sampler.Progress = lb.tick
	return lb
}

func (lb *lazyBar) tick() {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.bar == nil {
		lb.bar = pb.New(lb.total)
		lb.bar.SetWriter(os.Stdout)
		lb.bar.SetTemplateString(`{{ string . "prefix" }} {{ bar . }} {{ counters . }}`)
		lb.bar.Set("prefix", fmt.Sprintf("Sampling %d artists: ", lb.total))
		lb.bar.Start()
	}
	lb.bar.Increment()
	lb.done++
	if lb.done == lb.total {
		lb.bar.Finish()
	}
}

func (lb *lazyBar) finish() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lb.bar != nil && lb.done < lb.total {
		lb.bar.Finish()
		lb.done = lb.total
	}
}
