// Command chronicle runs a small, deterministic demonstration world: it
// seeds a handful of factions and settlements, registers the kernel's
// example domain systems, advances simulated time, and prints a run
// summary plus a checkpoint written to a local SQLite file. It exists to
// exercise the kernel end to end, not as a production CLI surface — the
// spec treats CLI/configuration as an external collaborator (spec.md §1).
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/chronicle-sim/internal/checkpoint"
	"github.com/talgya/chronicle-sim/internal/checkpoint/sqlitestore"
	"github.com/talgya/chronicle-sim/internal/domainrng"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/sched"
	"github.com/talgya/chronicle-sim/internal/scenario"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	seed := flag.Uint64("seed", 42, "global deterministic seed")
	years := flag.Uint("years", 5, "in-world years to simulate")
	parallel := flag.Bool("parallel", true, "use the data-parallel Update executor")
	dbPath := flag.String("db", "data/chronicle.db", "checkpoint SQLite file")
	flag.Parse()

	started := time.Now()
	slog.Info("seeding world", "seed", *seed, "years", *years, "parallel", *parallel)

	w := seedDemoWorld(*seed)

	ticksPerYear := uint64(simtime.MinutesPerYear)
	totalTicks := ticksPerYear * uint64(*years)
	w.RunTicks(int(totalTicks), *parallel)

	slog.Info("run complete", "summary", w.Summary(started))

	if err := os.MkdirAll("data", 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	ckpt, err := sqlitestore.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open checkpoint store", "error", err)
		os.Exit(1)
	}
	defer ckpt.Close()

	entities, relationships, events, participants := w.Snapshot()
	manifest := checkpoint.NewManifest(w.Sched.Clock.Year(), entities, relationships, events, participants)
	slog.Info("checkpoint manifest",
		"run_id", manifest.RunID,
		"entities", humanize.Comma(int64(manifest.EntityCount)),
		"events", humanize.Comma(int64(manifest.EventCount)),
	)

	if err := ckpt.WriteEntities(entities); err != nil {
		slog.Error("checkpoint write failed", "table", "entities", "error", err)
		os.Exit(1)
	}
	if err := ckpt.WriteRelationships(relationships); err != nil {
		slog.Error("checkpoint write failed", "table", "relationships", "error", err)
		os.Exit(1)
	}
	if err := ckpt.WriteEvents(events); err != nil {
		slog.Error("checkpoint write failed", "table", "events", "error", err)
		os.Exit(1)
	}
	if err := ckpt.WriteParticipants(participants); err != nil {
		slog.Error("checkpoint write failed", "table", "participants", "error", err)
		os.Exit(1)
	}

	slog.Info("checkpoint written", "path", *dbPath)
}

// seedDemoWorld builds a tiny starting world: two factions, a shared
// region, two settlements, and the kernel's example domain systems
// registered against it. World generation proper is out of this kernel's
// scope (spec.md §1); this is only enough seed state to give the example
// systems something to act on.
func seedDemoWorld(seed uint64) *scenario.World {
	b := scenario.New(seed)
	w := b.Build()

	_, regionH := b.Entity(store.KindRegion, "The Heartlands", simtime.Zero)

	_, crownH := b.Entity(store.KindFaction, "The Gilded Crown", simtime.Zero)
	store.Set(w.Store, crownH, store.FactionCore{
		Government: "monarchy", Stability: 0.6, Happiness: 0.5, Legitimacy: 0.7,
		Treasury: 1200,
	})
	store.Set(w.Store, crownH, store.FactionMilitary{EconomicMotivation: 0.4})

	_, leagueH := b.Entity(store.KindFaction, "The Trade League", simtime.Zero)
	store.Set(w.Store, leagueH, store.FactionCore{
		Government: "oligarchy", Stability: 0.55, Happiness: 0.6, Legitimacy: 0.6,
		Treasury: 900,
	})
	store.Set(w.Store, leagueH, store.FactionMilitary{EconomicMotivation: 0.5})

	_, capitalH := b.Entity(store.KindSettlement, "Highcrown", simtime.Zero)
	store.Set(w.Store, capitalH, store.SettlementCore{
		Population: store.PopulationBreakdown{"farmers": 4000, "artisans": 800},
		Prosperity: 0.6, Coastal: true,
	})
	b.Link(capitalH, regionH, store.LocatedIn)
	b.Link(capitalH, crownH, store.MemberOf)

	_, portH := b.Entity(store.KindSettlement, "Saltmere", simtime.Zero)
	store.Set(w.Store, portH, store.SettlementCore{
		Population: store.PopulationBreakdown{"fishers": 1500, "merchants": 600},
		Prosperity: 0.5, Coastal: true,
	})
	b.Link(portH, regionH, store.LocatedIn)
	b.Link(portH, leagueH, store.MemberOf)

	b.Relate(crownH, leagueH, relgraph.Ally, simtime.Zero)

	w.Sched.Register(domainrng.Economy, sched.EconomicCircuitBreaker{})
	return w
}
