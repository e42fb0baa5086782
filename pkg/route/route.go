package route

import (
	"github.com/favbox/breeze/pkg/app"
	errs "github.com/favbox/breeze/pkg/common/errors"
)

// Router 将请求目标路径映射为静态资源路径。
//
// 根路径 "/" 总是映射到默认文档，其他路径须在资源存储中存在。
type Router struct {
	store           app.AssetStore
	defaultDocument string
}

// NewRouter 创建基于资源存储 store 的路由器，defaultDocument 为根路径的默认文档名。
func NewRouter(store app.AssetStore, defaultDocument string) *Router {
	return &Router{
		store:           store,
		defaultDocument: defaultDocument,
	}
}

// Validate 校验并返回 path 对应的资源路径。
//
// path 为 "/" 时直接返回默认文档名，不检查其是否存在；
// 资源不存在时返回 errs.ErrNotFound；其余情况原样返回 path。
func (r *Router) Validate(path string) (string, error) {
	if path == "/" {
		return r.defaultDocument, nil
	}
	if !r.store.Exists(path) {
		return "", errs.New(errs.ErrNotFound, errs.ErrorTypePublic, path)
	}
	return path, nil
}
