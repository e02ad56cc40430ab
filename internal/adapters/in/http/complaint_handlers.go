package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/application/usecases/queries"
	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/kernel"
)

type raiseComplaintRequest struct {
	OrderID     *int64 `json:"order_id,omitempty"`
	Description string `json:"description"`
}

type raiseComplaintResponse struct {
	ComplaintID int64 `json:"complaint_id"`
}

type updateComplaintRequest struct {
	Status string `json:"status"`
}

type complaintView struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	OrderID     *int64    `json:"order_id,omitempty"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	RaisedAt    time.Time `json:"raised_at"`
}

// raiseComplaint handles POST /api/v1/complaints.
func (s *Server) raiseComplaint(ctx echo.Context) error {
	p := principalFrom(ctx)

	var req raiseComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var orderID *kernel.ID
	if req.OrderID != nil {
		id, err := kernel.NewID(*req.OrderID)
		if err != nil {
			return respondError(ctx, err)
		}
		orderID = &id
	}

	cmd, err := commands.NewRaiseComplaintCommand(p.UserID, orderID, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	complaintID, err := s.raiseComplaintHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, raiseComplaintResponse{ComplaintID: complaintID.Value()})
}

// listComplaints handles GET /api/v1/care/complaints?status=.
func (s *Server) listComplaints(ctx echo.Context) error {
	var statusFilter *complaint.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := complaint.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewListComplaintsQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	complaints, err := s.listComplaintsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]complaintView, len(complaints))
	for i, c := range complaints {
		view := complaintView{
			ID:          c.ID.Value(),
			CustomerID:  c.CustomerID.Value(),
			Description: c.Description,
			Status:      c.Status,
			RaisedAt:    c.RaisedAt,
		}
		if c.OrderID != nil {
			v := c.OrderID.Value()
			view.OrderID = &v
		}
		views[i] = view
	}

	return ctx.JSON(http.StatusOK, views)
}

// updateComplaint handles POST /api/v1/care/complaints/:complaintID/status.
func (s *Server) updateComplaint(ctx echo.Context) error {
	complaintID, err := kernel.IDFromString(ctx.Param("complaintID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	to, err := complaint.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateComplaintCommand(complaintID, to)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateComplaintHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
