package app

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/common/utils"
)

// AssetStore 定义了只读静态资源存储的接口。
//
// 路径均相对于存储根目录，实现必须支持并发读取。
type AssetStore interface {
	// ReadText 读取 path 对应文件的完整文本内容。
	ReadText(path string) (string, error)
	// Exists 报告 path 是否为存在的常规文件。
	Exists(path string) bool
}

// FS 表示本地文件系统中的静态资源存储。
//
// 所有路径都被限制在 Root 目录之内，"/../" 之类的路径不会越出根目录。
type FS struct {
	// 静态文件服务的根目录。
	Root string
}

var _ AssetStore = (*FS)(nil)

// NewFS 创建以 root 为根目录的静态资源存储。
func NewFS(root string) *FS {
	return &FS{Root: utils.TrimTrailingSlashes(root)}
}

// Exists 报告 path 是否为根目录下存在的常规文件。
func (fs *FS) Exists(path string) bool {
	name, ok := fs.resolve(path)
	if !ok {
		return false
	}
	fi, err := os.Stat(name)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// ReadText 读取 path 对应文件的文本内容，内容须为有效的 UTF-8。
func (fs *FS) ReadText(path string) (string, error) {
	name, ok := fs.resolve(path)
	if !ok {
		return "", errs.New(errs.ErrAssetRead, errs.ErrorTypePrivate, path)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", errs.New(errs.ErrAssetRead, errs.ErrorTypePrivate, err.Error())
	}
	if !utf8.Valid(b) {
		return "", errs.NewPrivatef("%w: 文件不是有效的 UTF-8 文本: %s", errs.ErrAssetRead, path)
	}
	return string(b), nil
}

// resolve 将请求路径映射为根目录下的本地文件名。
func (fs *FS) resolve(path string) (string, bool) {
	if n := strings.IndexByte(path, 0); n >= 0 {
		hlog.SystemLogger().Errorf("无法提供零字节的路径，位于 position=%d, path=%q", n, path)
		return "", false
	}
	clean := filepath.Clean("/" + filepath.FromSlash(path))
	if clean == string(filepath.Separator) {
		return "", false
	}
	root := fs.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, clean), true
}
