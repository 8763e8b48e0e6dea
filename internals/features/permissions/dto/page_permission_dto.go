// internals/features/permissions/dto/page_permission_dto.go
package dto

type UpsertPagePermissionRequest struct {
	PagePermissionPageKey string `json:"page_permission_page_key" validate:"required,min=2,max=120"`
	PagePermissionRole    string `json:"page_permission_role" validate:"required,oneof=admin staff viewer"`
	PagePermissionAllowed bool   `json:"page_permission_allowed"`
}
