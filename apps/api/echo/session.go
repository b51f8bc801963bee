package echoapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/school"
)

type (
	SessionRequest struct {
		Role   school.Role `json:"role"`
		UserID string      `json:"userId"`
	}

	SessionResponse struct {
		Token   string         `json:"token"`
		Session school.Session `json:"session"`
	}

	// authState is the shape of the auth preference slot.
	authState struct {
		IsAuthenticated bool         `json:"isAuthenticated"`
		Role            *school.Role `json:"role"`
		UserID          *string      `json:"userId"`
	}
)

func (req SessionRequest) Validate() error {
	if !req.Role.Valid() {
		roles := make([]string, 0, len(school.Roles))
		for _, r := range school.Roles {
			roles = append(roles, string(r))
		}
		return core.NewValidationError(nil, core.FieldError{
			Field: "role",
			Error: "role must be one of [" + strings.Join(roles, " ") + "]",
		})
	}
	return nil
}

type sessionApi struct {
	conf *core.Config
	svc  *school.Service
}

func registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc, conf *core.Config, svc *school.Service) {
	api := sessionApi{conf: conf, svc: svc}

	g.POST("/session", api.open)
	g.GET("/session", api.retrieve, jwt)
	g.DELETE("/session", api.close, jwt)
}

// open starts a session for the chosen role. There are no passwords: picking a role is enough.
func (api *sessionApi) open(ctx echo.Context) error {
	var data SessionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SessionRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	sess := school.Session{Role: data.Role, UserID: core.CleanString(data.UserID)}

	token, err := GenerateToken(api.conf, GetSessionClaims(api.conf, sess))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	state := authState{IsAuthenticated: true, Role: &sess.Role}
	if sess.UserID != "" {
		state.UserID = &sess.UserID
	}
	if err = api.saveAuthState(ctx, state); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, SessionResponse{Token: token, Session: sess})
}

func (api *sessionApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *sessionApi) close(ctx echo.Context) error {
	if err := api.saveAuthState(ctx, authState{}); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionApi) saveAuthState(ctx echo.Context, state authState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "encoding auth state")
	}
	return errors.Wrap(
		api.svc.SetPreference(ctx.Request().Context(), school.SlotAuth, value),
		"saving auth state",
	)
}
