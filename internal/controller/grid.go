package controller

import (
	"errors"
	"net/http"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo/repo_errors"
	"procurement-management-api/internal/service"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type gridRoutesHandler struct {
	gridService service.Grid
	validate    *validator.Validate
}

func newGridRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *gridRoutesHandler {
	h := &gridRoutesHandler{gridService: services.Grid, validate: v}

	outer.GET("/grid/:kind", h.GetGrid)
	outer.PUT("/grid/:kind", h.PutGrid)
	outer.DELETE("/grid/:kind/:id", h.DeleteRecord)

	return h
}

// gridRow is the wire form of one snapshot row. A nil cell carries an
// explicit null; a missing key means the cell was never touched.
type gridRow struct {
	Id    string             `json:"id" validate:"required,uuid"`
	Cells map[string]*string `json:"cells" validate:"required"`
}

type gridOutput struct {
	Kind        string    `json:"kind"`
	Columns     []string  `json:"columns"`
	Rows        []gridRow `json:"rows"`
	Diagnostics []string  `json:"diagnostics,omitempty"`
}

type putGridInput struct {
	Rows []gridRow `json:"rows" validate:"required,dive"`
}

// /grid/:kind
func (h *gridRoutesHandler) GetGrid(c echo.Context) error {
	kind, ok := parseKindParam(c.Param("kind"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{"Unknown grid kind"})
	}

	snapshot, diagnostics, err := h.gridService.BuildSnapshot(c.Request().Context(), kind)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, snapshotToOutput(snapshot, diagnostics)); e != nil {
		return e
	}

	return nil
}

// /grid/:kind
func (h *gridRoutesHandler) PutGrid(c echo.Context) error {
	kind, ok := parseKindParam(c.Param("kind"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{"Unknown grid kind"})
	}

	var input putGridInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	edited := entity.NewSnapshot(kind, nil)
	for _, row := range input.Rows {
		id, err := uuid.Parse(row.Id)
		if err != nil {
			if e := c.JSON(http.StatusBadRequest, errorResponse{"'" + row.Id + "' is not a valid row id"}); e != nil {
				return e
			}

			return err
		}

		cells := make(entity.Row, len(row.Cells))
		for column, cell := range row.Cells {
			if cell == nil {
				cells[column] = entity.NullValue()
				continue
			}
			cells[column] = entity.TextValue(*cell)
		}
		edited.Put(id, cells)
	}

	baseline, _, err := h.gridService.BuildSnapshot(c.Request().Context(), kind)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	report, err := h.gridService.SaveSnapshot(c.Request().Context(), kind, baseline, edited)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrNilSnapshot) || errors.Is(err, service.ErrSnapshotKindMismatch) {
			status = http.StatusBadRequest
		}
		if e := c.JSON(status, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, report); e != nil {
		return e
	}

	return nil
}

// /grid/:kind/:id
func (h *gridRoutesHandler) DeleteRecord(c echo.Context) error {
	kind, ok := parseKindParam(c.Param("kind"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{"Unknown grid kind"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'" + c.Param("id") + "' is not a valid record id"}); e != nil {
			return e
		}

		return err
	}

	report, err := h.gridService.DeleteWithCascade(c.Request().Context(), kind, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			if e := c.JSON(http.StatusNotFound, errorResponse{"There is no record with given id"}); e != nil {
				return e
			}

			return err
		}

		// The report still carries whatever dependents did get removed.
		if e := c.JSON(http.StatusConflict, report); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, report); e != nil {
		return e
	}

	return nil
}

func snapshotToOutput(snapshot *entity.Snapshot, diagnostics []string) gridOutput {
	ids := snapshot.Ids()
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	rows := make([]gridRow, 0, len(ids))
	for _, id := range ids {
		cells := make(map[string]*string, len(snapshot.Rows[id]))
		for column, value := range snapshot.Rows[id] {
			if value.IsNull() {
				cells[column] = nil
				continue
			}
			text := value.String()
			cells[column] = &text
		}
		rows = append(rows, gridRow{Id: id.String(), Cells: cells})
	}

	return gridOutput{
		Kind:        string(snapshot.Kind),
		Columns:     snapshot.Columns,
		Rows:        rows,
		Diagnostics: diagnostics,
	}
}
