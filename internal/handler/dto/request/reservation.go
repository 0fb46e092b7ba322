package request

import (
	"strings"
	"time"

	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase/commands"
)

var ErrBadDateFormat = errs.New("dates must use the YYYY-MM-DD format")

type CreateReservationRequest struct {
	ClientID      int64    `json:"client_id" binding:"required"`
	RoomID        int64    `json:"room_id" binding:"required"`
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Remarks       string   `json:"remarks,omitempty"`
}

func (r CreateReservationRequest) ToCommand() (commands.CreateReservationCommand, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return commands.CreateReservationCommand{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return commands.CreateReservationCommand{}, err
	}

	return commands.CreateReservationCommand{
		ClientID:      r.ClientID,
		RoomID:        r.RoomID,
		StartDate:     start,
		EndDate:       end,
		PricePerNight: r.PricePerNight,
		Remarks:       strings.TrimSpace(r.Remarks),
	}, nil
}

type ModifyReservationRequest struct {
	RoomID        *int64   `json:"room_id,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Remarks       *string  `json:"remarks,omitempty"`
}

func (r ModifyReservationRequest) ToCommand() (commands.ModifyReservationCommand, error) {
	cmd := commands.ModifyReservationCommand{
		RoomID:        r.RoomID,
		PricePerNight: r.PricePerNight,
	}

	if r.StartDate != nil {
		start, err := parseDate(*r.StartDate)
		if err != nil {
			return commands.ModifyReservationCommand{}, err
		}
		cmd.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := parseDate(*r.EndDate)
		if err != nil {
			return commands.ModifyReservationCommand{}, err
		}
		cmd.EndDate = &end
	}
	if r.Remarks != nil {
		trimmed := strings.TrimSpace(*r.Remarks)
		cmd.Remarks = &trimmed
	}

	return cmd, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrBadDateFormat)
	}
	return t, nil
}
