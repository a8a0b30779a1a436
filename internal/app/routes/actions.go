// Package routes maps the single-endpoint action API onto the controllers
package routes

// Action names the operations of the API. The client selects one per
// request via the action parameter.
type Action string

const (
	ActionAdminLogin          Action = "admin_login"
	ActionAdminMe             Action = "admin_me"
	ActionAdminLogout         Action = "admin_logout"
	ActionListSubjects        Action = "list_subjects"
	ActionListResources       Action = "list_resources"
	ActionListResourcesByYear Action = "list_resources_by_year"
	ActionAdminListResources  Action = "admin_list_resources"
	ActionAdminCreateResource Action = "admin_create_resource"
	ActionAdminDeleteResource Action = "admin_delete_resource"
	ActionGetPageContent      Action = "get_page_content"
	ActionAdminSetPageContent Action = "admin_set_page_content"
	ActionAdminStats          Action = "admin_stats"
)
