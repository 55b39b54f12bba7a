package converter

import (
	dto "royal_casino/internal/api/dto/game"
	"royal_casino/internal/model"
)

func ToAction(name string, req dto.ActionRequest) model.Action {
	action := model.Action{
		Name:    name,
		Indices: req.Indices,
		Angle:   req.Angle,
		Power:   req.Power,
	}
	switch {
	case req.Card != nil:
		action.Index = *req.Card
	case req.Index != nil:
		action.Index = *req.Index
	}
	return action
}

func ToGameResponse(snap model.Snapshot, balance int) dto.GameResponse {
	return dto.GameResponse{
		Snapshot: snap,
		Balance:  balance,
	}
}
