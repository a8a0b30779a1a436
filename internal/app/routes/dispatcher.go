package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/scop/resourcehub/internal/app/controllers"
	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/middleware"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
)

// actionSpec binds one action to its handler, HTTP method and guard
type actionSpec struct {
	method string
	admin  bool
	handle gin.HandlerFunc
}

// Dispatcher routes every request on the single API endpoint by its
// action parameter. The action table is closed: anything outside it is
// rejected before any handler code runs.
type Dispatcher struct {
	actions map[Action]actionSpec
	logger  zerolog.Logger
}

// NewDispatcher builds the action table over the controllers
func NewDispatcher(
	auth *controllers.AuthController,
	resources *controllers.ResourceController,
	pages *controllers.PageController,
	stats *controllers.StatsController,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		actions: map[Action]actionSpec{
			ActionAdminLogin:          {method: http.MethodPost, handle: auth.Login},
			ActionAdminMe:             {method: http.MethodGet, handle: auth.Me},
			ActionAdminLogout:         {method: http.MethodPost, handle: auth.Logout},
			ActionListSubjects:        {method: http.MethodGet, handle: resources.ListSubjects},
			ActionListResources:       {method: http.MethodGet, handle: resources.ListResources},
			ActionListResourcesByYear: {method: http.MethodGet, handle: resources.ListResourcesByYear},
			ActionAdminListResources:  {method: http.MethodGet, admin: true, handle: resources.AdminListResources},
			ActionAdminCreateResource: {method: http.MethodPost, admin: true, handle: resources.CreateResource},
			ActionAdminDeleteResource: {method: http.MethodPost, admin: true, handle: resources.DeleteResource},
			ActionGetPageContent:      {method: http.MethodGet, handle: pages.GetContent},
			ActionAdminSetPageContent: {method: http.MethodPost, admin: true, handle: pages.SetContent},
			ActionAdminStats:          {method: http.MethodGet, admin: true, handle: stats.Overview},
		},
	}
}

// Register mounts the dispatcher. Both paths serve the same table so
// clients written against the old endpoint keep working.
func (d *Dispatcher) Register(router gin.IRouter) {
	router.Any("/api", d.Handle)
	router.Any("/api/index.php", d.Handle)
}

// Handle resolves the action parameter, enforces method and admin guard,
// then runs the handler. The guard runs before the handler so no side
// effect can precede an authorization failure.
func (d *Dispatcher) Handle(c *gin.Context) {
	name := c.Query("action")
	if name == "" {
		name = c.PostForm("action")
	}

	spec, ok := d.actions[Action(name)]
	if !ok {
		d.logger.Warn().Str("action", name).Msg("Unknown API action")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Unknown action."))
		return
	}

	if c.Request.Method != spec.method {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse("Method not allowed."))
		return
	}

	if spec.admin {
		user, ok := middleware.CurrentUser(c)
		if !ok || user.Role != models.RoleAdmin {
			middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
			return
		}
	}

	spec.handle(c)
}
