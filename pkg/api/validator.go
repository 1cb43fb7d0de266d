package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// maxHealthStep - одна команда HEALTH не крутит счетчик дальше этого
const maxHealthStep = 100

func (p PlacePayload) Validate() error {
	if p.PieceID == "" {
		return errors.New("pieceId is required")
	}
	if p.CircleID < 0 {
		return errors.New("circleId cannot be negative")
	}
	return nil
}

func (p PiecePayload) Validate() error {
	if p.PieceID == "" {
		return errors.New("pieceId is required")
	}
	return nil
}

func (p HealthPayload) Validate() error {
	if p.PieceID == "" {
		return errors.New("pieceId is required")
	}
	if p.Delta == 0 {
		return errors.New("health delta cannot be zero")
	}
	if p.Delta > maxHealthStep || p.Delta < -maxHealthStep {
		return errors.New("health delta too large")
	}
	return nil
}

func (p LayoutPayload) Validate() error {
	if p.Layout < 1 {
		return errors.New("layout number starts at 1")
	}
	return nil
}

func (p RegeneratePayload) Validate() error {
	if p.Layout < 1 {
		return errors.New("layout number starts at 1")
	}
	if p.Seed == "" {
		return errors.New("seed is required")
	}
	return nil
}
