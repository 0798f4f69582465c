// file: internals/features/meetings/dto/meeting_dto.go
package dto

import (
	"github.com/google/uuid"

	m "churchstats_backend/internals/features/meetings/model"
	svc "churchstats_backend/internals/features/meetings/service"
)

// Satu grup duplikat + jumlah baris kehadiran per kandidat hapus
type DuplicateGroupItem struct {
	IdentityKey     string               `json:"identity_key"`
	MatchBranch     string               `json:"match_branch"`
	EventDate       string               `json:"event_date"`
	Records         []m.MeetingModel     `json:"records"`
	DependentCounts map[uuid.UUID]int    `json:"dependent_counts"`
}

func ToDuplicateGroupItem(g svc.DuplicateGroup, counts map[uuid.UUID]int) DuplicateGroupItem {
	return DuplicateGroupItem{
		IdentityKey:     g.IdentityKey,
		MatchBranch:     g.MatchBranch,
		EventDate:       g.EventDate,
		Records:         g.Records,
		DependentCounts: counts,
	}
}

type DeleteMeetingRequest struct {
	MeetingIds []uuid.UUID `json:"meeting_ids" validate:"required,min=1,dive,uuid4"`
}

type DeleteMeetingResponse struct {
	DeletedMeetings    int `json:"deleted_meetings"`
	DeletedAttendances int `json:"deleted_attendances"`
}
