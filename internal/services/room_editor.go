package services

import (
	"context"
	"errors"
	"fmt"

	"guesthouse/internal/domain"
)

type EditorState int

const (
	EditorIdle EditorState = iota
	EditorCreating
	EditorEditing
	EditorSaving
)

func (s EditorState) String() string {
	switch s {
	case EditorIdle:
		return "idle"
	case EditorCreating:
		return "creating"
	case EditorEditing:
		return "editing"
	case EditorSaving:
		return "saving"
	}
	return fmt.Sprintf("EditorState(%d)", int(s))
}

var ErrInvalidTransition = errors.New("invalid room editor transition")

// RoomEditor drives one admin room form:
//
//	Idle -> Creating -> Saving -> Idle
//	Idle -> Editing  -> Saving -> Idle
//
// Cancel from Creating or Editing drops the draft. A failed save goes back to the
// state it came from with the draft intact.
type RoomEditor struct {
	rooms *RoomService
	state EditorState
	draft domain.Room
}

func NewRoomEditor(rooms *RoomService) *RoomEditor {
	return &RoomEditor{rooms: rooms}
}

func (e *RoomEditor) State() EditorState { return e.state }

// Draft is the room being edited; nil while idle.
func (e *RoomEditor) Draft() *domain.Room {
	if e.state != EditorCreating && e.state != EditorEditing {
		return nil
	}
	return &e.draft
}

func (e *RoomEditor) transition(from, to EditorState) error {
	if e.state != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.state, to)
	}
	e.state = to
	return nil
}

// StartCreate opens an empty, available draft.
func (e *RoomEditor) StartCreate() error {
	if err := e.transition(EditorIdle, EditorCreating); err != nil {
		return err
	}
	e.draft = domain.Room{IsAvailable: true, Amenities: domain.StringList{}, Images: domain.StringList{}}
	return nil
}

func (e *RoomEditor) StartEdit(room domain.Room) error {
	if err := e.transition(EditorIdle, EditorEditing); err != nil {
		return err
	}
	e.draft = room
	return nil
}

func (e *RoomEditor) Cancel() error {
	if e.state != EditorCreating && e.state != EditorEditing {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, e.state)
	}
	e.state = EditorIdle
	e.draft = domain.Room{}
	return nil
}

// Save writes the draft. On success the editor is idle and the stored room is returned.
func (e *RoomEditor) Save(ctx context.Context) (domain.Room, error) {
	from := e.state
	if from != EditorCreating && from != EditorEditing {
		return domain.Room{}, fmt.Errorf("%w: save from %s", ErrInvalidTransition, from)
	}
	e.state = EditorSaving

	var (
		saved domain.Room
		err   error
	)
	if from == EditorCreating {
		saved, err = e.rooms.Create(ctx, e.draft)
	} else {
		saved, err = e.draft, e.rooms.Update(ctx, e.draft)
	}
	if err != nil {
		e.state = from
		return domain.Room{}, err
	}
	e.state = EditorIdle
	e.draft = domain.Room{}
	return saved, nil
}
