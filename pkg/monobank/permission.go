package monobank

import (
	"fmt"
	"strings"

	"github.com/aegis-sign/monobank/pkg/apierrors"
)

// Permission 是 corporate 访问请求可申请的权限。
type Permission string

const (
	// PermissionStatement 对应 GET_STATEMENT。
	PermissionStatement Permission = "s"
	// PermissionPersonalInfo 对应 GET_PERSONAL_INFO。
	PermissionPersonalInfo Permission = "p"
)

func (p Permission) String() string { return string(p) }

// Valid 判断是否为已知权限。
func (p Permission) Valid() bool {
	switch p {
	case PermissionStatement, PermissionPersonalInfo:
		return true
	default:
		return false
	}
}

const invalidPermissionsMessage = "Every permission in list must be instance of Permission"

// joinPermissions 校验并按调用方给定的顺序拼接权限，不排序。
func joinPermissions(permissions []Permission) (string, error) {
	if len(permissions) == 0 {
		return "", apierrors.New(apierrors.CodeInvalidPermissionValue, "at least one permission is required")
	}
	var sb strings.Builder
	for _, p := range permissions {
		if !p.Valid() {
			return "", apierrors.New(apierrors.CodeInvalidPermissionValue,
				fmt.Sprintf("%s, got %q", invalidPermissionsMessage, string(p)))
		}
		sb.WriteString(string(p))
	}
	return sb.String(), nil
}

// ParsePermissions 将 "sp" 这样的字符串拆分为权限列表，保留顺序。
func ParsePermissions(s string) ([]Permission, error) {
	permissions := make([]Permission, 0, len(s))
	for _, r := range s {
		permissions = append(permissions, Permission(string(r)))
	}
	if _, err := joinPermissions(permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}
