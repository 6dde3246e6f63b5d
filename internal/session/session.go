// internal/session/session.go
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mwhitten/boardwalk/engine"
	"github.com/mwhitten/boardwalk/internal/journal"
)

// OnGameEndFunc defines the signature for a callback executed when a game
// ends. It receives the session ID, the winner's ID (Nil when the game ended
// with every seat bankrupt), and the final cash balances.
type OnGameEndFunc func(sessionID uuid.UUID, winner uuid.UUID, cash map[uuid.UUID]int)

// ActionRecorder receives one record per session action for the historian.
// Satisfied by *journal.Client.
type ActionRecorder interface {
	Publish(ctx context.Context, rec journal.Record) error
}

// Session owns one engine game and bridges it to the outside world: player
// UUIDs map to engine seats, every state transition is broadcast as Events,
// and engine contract violations are contained to the offending turn.
type Session struct {
	ID uuid.UUID

	// Engine integration — authoritative game state.
	Game         *engine.Game
	playerToSeat map[uuid.UUID]uint8
	seatToPlayer [engine.MaxPlayers]uuid.UUID

	actionIndex int  // Sequential index for historian records.
	ended       bool // EventGameEnd already fired.

	Mu  sync.Mutex // Mutex protecting concurrent access to session state.
	log *logrus.Entry

	// Communication callbacks.
	BroadcastFn         func(ev Event)                         // Sends an event to all connected players.
	BroadcastToPlayerFn func(playerID uuid.UUID, ev Event)     // Sends an event to a single player.
	OnGameEnd           OnGameEndFunc                          // Callback executed when the game finishes.
	Journal             ActionRecorder                         // Optional historian sink.
}

// NewSession creates a session for the given players, seated in order, with a
// freshly initialized engine game.
func NewSession(seed uint64, playerIDs []uuid.UUID) (*Session, error) {
	if len(playerIDs) < engine.MinPlayers || len(playerIDs) > engine.MaxPlayers {
		return nil, fmt.Errorf("session: player count %d outside [%d, %d]",
			len(playerIDs), engine.MinPlayers, engine.MaxPlayers)
	}
	id, _ := uuid.NewRandom()
	s := &Session{
		ID:           id,
		Game:         engine.NewGame(seed, len(playerIDs)),
		playerToSeat: make(map[uuid.UUID]uint8, len(playerIDs)),
		log:          logrus.WithField("session", id),
	}
	for i, pid := range playerIDs {
		s.playerToSeat[pid] = uint8(i)
		s.seatToPlayer[i] = pid
	}
	return s, nil
}

// Start announces the session to all players: seating, first turn, and a full
// state sync for everyone.
func (s *Session) Start() {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	seats := make([]EventSeat, len(s.Game.Players))
	for i := range s.Game.Players {
		seats[i] = EventSeat{ID: s.seatToPlayer[i], Seat: uint8(i)}
	}
	s.fireEvent(Event{
		Type:    EventGameStart,
		Payload: map[string]interface{}{"seats": seats},
	})
	s.logAction(uuid.Nil, string(EventGameStart), nil)
	s.broadcastPlayerTurn()
	s.broadcastSyncToAll()
}

// Advance drives the virtual clock by dt seconds. Token movement completes
// here; a completed move fires the landing's events (move end, popup, turn).
func (s *Session) Advance(dt float64) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.Game.Phase != engine.PhaseMoving {
		s.Game.Tick(dt)
		return
	}
	mover := s.Game.Current
	move := s.Game.CurrentPlayer().Move
	pre := s.capture()
	if !s.guarded(func() { s.Game.Tick(dt) }) {
		return
	}
	after := &s.Game.Players[mover].Move
	if s.Game.Phase == engine.PhaseMoving && after.Active && after.Start == move.Start {
		return // gate not yet elapsed, same movement in flight
	}
	s.fireEvent(Event{
		Type:  EventPlayerMoveEnd,
		Seat:  s.eventSeat(mover),
		Space: s.Game.Players[mover].Position,
	})
	s.logAction(s.seatToPlayer[mover], string(EventPlayerMoveEnd), map[string]interface{}{
		"space": s.Game.Players[mover].Position,
		"path":  move.Path,
	})
	// A card landing can start a second movement inside the same tick.
	if after.Active {
		s.fireEvent(Event{
			Type: EventPlayerMoveStart,
			Seat: s.eventSeat(mover),
			Path: append([]int(nil), after.Path...),
		})
	}
	s.emitTransitions(pre)
}

// HandleRoll processes a roll request from a player. Out-of-turn and
// out-of-phase requests are dropped, mirroring the engine's gating.
func (s *Session) HandleRoll(playerID uuid.UUID) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	seat, ok := s.playerToSeat[playerID]
	if !ok {
		s.log.WithField("player", playerID).Warn("roll from unknown player ignored")
		return
	}
	if !s.Game.CanRoll(seat) {
		s.log.WithFields(logrus.Fields{"player": playerID, "phase": s.Game.Phase}).
			Debug("roll ignored out of phase")
		return
	}

	pre := s.capture()
	if !s.guarded(func() { s.Game.RequestRoll(seat) }) {
		return
	}
	s.fireEvent(Event{
		Type: EventPlayerRoll,
		Seat: s.eventSeat(seat),
		Dice: []uint8{s.Game.Dice[0], s.Game.Dice[1]},
	})
	s.logAction(playerID, string(EventPlayerRoll), map[string]interface{}{
		"d1": s.Game.Dice[0], "d2": s.Game.Dice[1],
	})
	if p := &s.Game.Players[seat]; p.Move.Active {
		s.fireEvent(Event{
			Type: EventPlayerMoveStart,
			Seat: s.eventSeat(seat),
			Path: append([]int(nil), p.Move.Path...),
		})
	}
	s.emitTransitions(pre)
}

// HandleAck processes a popup acknowledgment. For a buy popup, choice 0
// accepts the purchase; any other value declines. Other popups treat every
// choice as a plain acknowledgment.
func (s *Session) HandleAck(playerID uuid.UUID, choice int) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	seat, ok := s.playerToSeat[playerID]
	if !ok {
		s.log.WithField("player", playerID).Warn("ack from unknown player ignored")
		return
	}
	if !s.Game.AcceptsAck(seat) {
		s.log.WithFields(logrus.Fields{"player": playerID, "phase": s.Game.Phase}).
			Debug("ack ignored out of phase")
		return
	}

	wasBuy := s.Game.Phase == engine.PhaseBuying
	space := s.Game.Popup.Space
	pre := s.capture()
	if !s.guarded(func() { s.Game.AcknowledgePopup(seat, choice) }) {
		return
	}
	s.logAction(playerID, "popup_ack", map[string]interface{}{"choice": choice, "space": space})
	if wasBuy && choice == 0 && s.Game.Board.Space(space).Deed.Owner == int8(seat) {
		s.fireEvent(Event{Type: EventPlayerBuy, Seat: s.eventSeat(seat), Space: space})
		s.logAction(playerID, string(EventPlayerBuy), map[string]interface{}{"space": space})
	}
	s.emitTransitions(pre)
}

// Snapshot returns a deep copy of the engine state for persistence.
func (s *Session) Snapshot() engine.Snapshot {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.Game.Save()
}

// RestoreSnapshot replaces the engine state with a previously saved snapshot
// and resyncs every player.
func (s *Session) RestoreSnapshot(snap engine.Snapshot) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Game.Restore(snap)
	s.ended = s.Game.IsGameOver()
	s.broadcastSyncToAll()
}

// ---------------------------------------------------------------------------
// Transition bookkeeping
// ---------------------------------------------------------------------------

// transitionSnapshot is the per-player state compared before and after each
// engine call to decide which events to emit.
type transitionSnapshot struct {
	current  uint8
	popup    engine.PopupKind
	bankrupt []bool
	jailed   []bool
}

// capture records the observable state before an engine mutation.
// Assumes lock is held by caller.
func (s *Session) capture() transitionSnapshot {
	snap := transitionSnapshot{
		current:  s.Game.Current,
		popup:    s.Game.Popup.Kind,
		bankrupt: make([]bool, len(s.Game.Players)),
		jailed:   make([]bool, len(s.Game.Players)),
	}
	for i := range s.Game.Players {
		snap.bankrupt[i] = s.Game.Players[i].Bankrupt
		snap.jailed[i] = s.Game.Players[i].InJail
	}
	return snap
}

// emitTransitions diffs the game against a pre-mutation snapshot and fires
// the matching events. Assumes lock is held by caller.
func (s *Session) emitTransitions(pre transitionSnapshot) {
	g := s.Game

	for i := range g.Players {
		if g.Players[i].InJail && !pre.jailed[i] {
			s.fireEvent(Event{Type: EventPlayerJailed, Seat: s.eventSeat(uint8(i))})
			s.logAction(s.seatToPlayer[i], string(EventPlayerJailed), nil)
		}
		if g.Players[i].Bankrupt && !pre.bankrupt[i] {
			s.fireEvent(Event{Type: EventPlayerBankrupt, Seat: s.eventSeat(uint8(i))})
			s.logAction(s.seatToPlayer[i], string(EventPlayerBankrupt), nil)
		}
	}

	if g.Popup.Kind != engine.PopupNone && (g.Popup.Kind != pre.popup || g.Current != pre.current) {
		popup := g.Popup
		s.fireEvent(Event{Type: EventPopup, Seat: s.eventSeat(popup.Player), Popup: &popup})
	}

	if s.maybeFinish() {
		return
	}
	if g.Current != pre.current && g.Phase == engine.PhaseRoll {
		s.broadcastPlayerTurn()
	}
	s.broadcastSyncToAll()
}

// maybeFinish fires the end-of-game events once a winner exists or every seat
// is bankrupt. Returns true when the session is over.
// Assumes lock is held by caller.
func (s *Session) maybeFinish() bool {
	g := s.Game
	winnerSeat := g.Winner()
	if winnerSeat < 0 && !g.IsGameOver() {
		return false
	}
	if s.ended {
		return true
	}
	s.ended = true

	winner := uuid.Nil
	if winnerSeat >= 0 {
		winner = s.seatToPlayer[winnerSeat]
	}
	cash := make(map[uuid.UUID]int, len(g.Players))
	balances := make(map[string]int, len(g.Players))
	for i := range g.Players {
		cash[s.seatToPlayer[i]] = g.Players[i].Cash
		balances[s.seatToPlayer[i].String()] = g.Players[i].Cash
	}
	s.fireEvent(Event{
		Type: EventGameEnd,
		Payload: map[string]interface{}{
			"winner": winner.String(),
			"cash":   balances,
		},
	})
	s.logAction(uuid.Nil, string(EventGameEnd), map[string]interface{}{"winner": winner.String()})
	s.log.WithField("winner", winner).Info("session ended")

	if s.OnGameEnd != nil {
		s.OnGameEnd(s.ID, winner, cash)
	}
	return true
}

// guarded runs an engine mutation, converting a contract-violation panic into
// a skipped turn instead of a crashed session. Returns false when the call
// panicked. Assumes lock is held by caller.
func (s *Session) guarded(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("engine fault, skipping turn")
			s.logAction(uuid.Nil, string(EventTurnSkipped), map[string]interface{}{"fault": fmt.Sprint(r)})
			s.Game.SkipTurn()
			s.fireEvent(Event{Type: EventTurnSkipped, Seat: s.eventSeat(s.Game.Current)})
			s.broadcastPlayerTurn()
			s.broadcastSyncToAll()
			ok = false
		}
	}()
	fn()
	return true
}

// ---------------------------------------------------------------------------
// Broadcasting
// ---------------------------------------------------------------------------

func (s *Session) eventSeat(seat uint8) *EventSeat {
	return &EventSeat{ID: s.seatToPlayer[seat], Seat: seat}
}

// broadcastPlayerTurn notifies all players of the current player's turn.
// Assumes lock is held by caller.
func (s *Session) broadcastPlayerTurn() {
	if s.Game.IsGameOver() {
		return
	}
	s.fireEvent(Event{Type: EventPlayerTurn, Seat: s.eventSeat(s.Game.Current)})
}

// broadcastSyncToAll sends the full view to every player.
// Assumes lock is held by caller.
func (s *Session) broadcastSyncToAll() {
	if s.BroadcastToPlayerFn == nil {
		return
	}
	for i := range s.Game.Players {
		pid := s.seatToPlayer[i]
		view := s.BuildView(pid)
		s.BroadcastToPlayerFn(pid, Event{Type: EventPrivateSync, State: &view})
	}
}

// fireEvent broadcasts an event to all connected players via the BroadcastFn
// callback. Assumes lock is held by caller.
func (s *Session) fireEvent(ev Event) {
	if s.BroadcastFn == nil {
		s.log.WithField("type", ev.Type).Warn("BroadcastFn is nil, dropping event")
		return
	}
	s.BroadcastFn(ev)
}

// logAction sends action details to the historian via the journal sink.
// Increments the internal action index for ordering.
// Assumes lock is held by caller.
func (s *Session) logAction(actorID uuid.UUID, actionType string, payload map[string]interface{}) {
	s.actionIndex++
	if s.Journal == nil {
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	rec := journal.Record{
		SessionID:   s.ID,
		ActionIndex: s.actionIndex,
		ActorID:     actorID,
		ActionType:  actionType,
		Payload:     payload,
		Timestamp:   time.Now().UnixMilli(),
	}

	// Asynchronously publish; the game never waits on the historian.
	go func(rec journal.Record) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Journal.Publish(ctx, rec); err != nil {
			s.log.WithError(err).WithField("action", rec.ActionType).
				Error("failed publishing action to journal")
		}
	}(rec)
}
