// cmd/boardwalk/main.go
//
// Headless self-play driver: seats a table of always-buy players, runs the
// session to completion, and wires the optional journal and snapshot store.
// Useful for soak-testing the rules and for generating replay journals.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mwhitten/boardwalk/engine"
	"github.com/mwhitten/boardwalk/internal/config"
	"github.com/mwhitten/boardwalk/internal/journal"
	"github.com/mwhitten/boardwalk/internal/session"
	"github.com/mwhitten/boardwalk/internal/store"
)

const maxSteps = 200000

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("configuration")
	}
	logrus.SetLevel(cfg.LogLevel)
	log := logrus.WithField("component", "boardwalk")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	players := make([]uuid.UUID, cfg.Players)
	for i := range players {
		players[i] = uuid.New()
	}
	sess, err := session.NewSession(seed, players)
	if err != nil {
		logrus.WithError(err).Fatal("session setup")
	}
	sess.BroadcastFn = func(ev session.Event) {
		log.WithFields(logrus.Fields{"type": ev.Type, "seat": ev.Seat}).Debug("event")
	}
	sess.BroadcastToPlayerFn = func(uuid.UUID, session.Event) {}

	ctx := context.Background()

	if cfg.RedisAddr != "" {
		jc, err := journal.NewClient(ctx, cfg.RedisAddr, cfg.JournalKey)
		if err != nil {
			logrus.WithError(err).Fatal("journal setup")
		}
		defer jc.Close()
		sess.Journal = jc
		log.WithField("addr", cfg.RedisAddr).Info("journal enabled")
	}

	var st *store.Store
	if cfg.SnapshotDSN != "" {
		st, err = store.Open(cfg.SnapshotDSN)
		if err != nil {
			logrus.WithError(err).Fatal("store setup")
		}
		defer st.Close()
		log.WithField("dsn", cfg.SnapshotDSN).Info("snapshot store enabled")
	}

	done := false
	sess.OnGameEnd = func(id uuid.UUID, winner uuid.UUID, cash map[uuid.UUID]int) {
		log.WithFields(logrus.Fields{"winner": winner, "cash": cash}).Info("game over")
		done = true
	}

	log.WithFields(logrus.Fields{
		"session": sess.ID, "players": cfg.Players, "seed": seed,
	}).Info("starting self-play")
	sess.Start()

	lastCheckpoint := uint16(0)
	for step := 0; step < maxSteps && !done; step++ {
		g := sess.Game
		switch g.Phase {
		case engine.PhaseRoll:
			sess.HandleRoll(players[g.Current])
		case engine.PhaseMoving:
			sess.Advance(cfg.TickSeconds)
		default:
			// Always buy, always acknowledge.
			sess.HandleAck(players[g.Popup.Player], 0)
		}

		// Checkpoint once per completed turn.
		if st != nil && g.TurnCount != lastCheckpoint {
			lastCheckpoint = g.TurnCount
			if err := st.Save(ctx, sess.ID, sess.Snapshot()); err != nil {
				log.WithError(err).Warn("checkpoint failed")
			}
		}
	}

	if !done {
		log.WithField("turns", sess.Game.TurnCount).
			Info("step budget exhausted without a winner")
	}
	if st != nil {
		if err := st.Save(ctx, sess.ID, sess.Snapshot()); err != nil {
			log.WithError(err).Error("final snapshot failed")
			os.Exit(1)
		}
	}
}
