package prompt

import (
	"errors"
	"io"

	"github.com/mmr-tortoise/vocab/internal/logging"
	"github.com/mmr-tortoise/vocab/internal/model"
	"github.com/mmr-tortoise/vocab/internal/store"
	"github.com/mmr-tortoise/vocab/internal/style"
)

// State is the loop's position in its two-state machine.
type State int

const (
	// StatePrompting is the start state; every completed card cycle is
	// a self-transition back to it.
	StatePrompting State = iota

	// StateDone is terminal, reached when the user declines to continue
	// or the input stream ends.
	StateDone
)

// Loop drives repeated card-entry cycles: title, content, save
// confirmation, continue confirmation. It owns no console state itself;
// everything flows through the injected Prompter, Store, and Sink.
type Loop struct {
	prompter *Prompter
	cards    store.Store
	log      logging.Sink

	// continueDefault is the answer assumed for a bare newline at the
	// continue question.
	continueDefault bool

	state State
}

// NewLoop wires a card-entry loop. The save-confirmation default is
// always affirmative; continueDefault controls the continue question.
func NewLoop(prompter *Prompter, cards store.Store, log logging.Sink, continueDefault bool) *Loop {
	return &Loop{
		prompter:        prompter,
		cards:           cards,
		log:             log,
		continueDefault: continueDefault,
		state:           StatePrompting,
	}
}

// State returns the loop's current state.
func (l *Loop) State() State {
	return l.state
}

// Run executes card cycles until the user declines to continue or the
// input stream ends. Store failures are fatal: the error is returned
// and the loop stops without retrying.
func (l *Loop) Run() error {
	for l.state == StatePrompting {
		cont, err := l.cycle()
		if err != nil {
			l.state = StateDone
			return err
		}
		if !cont {
			l.state = StateDone
		}
	}
	return nil
}

// cycle runs one full card cycle. It returns false when the loop should
// stop, which happens on a negative continue answer or end of input.
func (l *Loop) cycle() (bool, error) {
	title, err := l.prompter.ReadTitle()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.log.Debug("input stream ended before title")
			return false, nil
		}
		return false, model.WrapCLIError(model.ExitInputError, "failed to read title", err)
	}

	content, err := l.prompter.ReadContent()
	if err != nil {
		return false, model.WrapCLIError(model.ExitInputError, "failed to read content", err)
	}

	card := model.Card{Title: title, Content: content}
	l.log.Debug("card entered", "card", card.String())

	save, err := l.prompter.Confirm("Save this card?", true)
	if errors.Is(err, io.EOF) {
		// Stream ended at the question: wind down without saving
		// rather than acting on an answer nobody gave.
		l.log.Debug("input stream ended at save confirmation")
		return false, nil
	}
	if err != nil {
		return false, model.WrapCLIError(model.ExitInputError, "failed to read save confirmation", err)
	}

	if save {
		saved, err := l.cards.Append(card)
		if err != nil {
			return false, err
		}
		l.prompter.Say(style.TagSuccess, "Saved card %q", saved.Title)
		l.log.Info("card saved", "id", saved.ID, "title", saved.Title)
	} else {
		l.prompter.Say(style.TagMuted, "Discarded card %q", card.Title)
		l.log.Debug("card discarded", "title", card.Title)
	}

	cont, err := l.prompter.Confirm("Add another card?", l.continueDefault)
	if errors.Is(err, io.EOF) {
		l.log.Debug("input stream ended at continue confirmation")
		return false, nil
	}
	if err != nil {
		return false, model.WrapCLIError(model.ExitInputError, "failed to read continue confirmation", err)
	}
	return cont, nil
}
