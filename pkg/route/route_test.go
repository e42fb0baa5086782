package route

import (
	"errors"
	"testing"

	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/stretchr/testify/assert"
)

type mapStore map[string]string

func (m mapStore) ReadText(path string) (string, error) {
	if s, ok := m[path]; ok {
		return s, nil
	}
	return "", errs.ErrAssetRead
}

func (m mapStore) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

func TestRouterValidate(t *testing.T) {
	r := NewRouter(mapStore{"/about.html": "about"}, "index.html")

	path, err := r.Validate("/about.html")
	assert.Nil(t, err)
	assert.Equal(t, "/about.html", path)

	_, err = r.Validate("/missing.html")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRouterValidateRoot(t *testing.T) {
	// 根路径不检查默认文档是否存在
	r := NewRouter(mapStore{}, "index.html")
	path, err := r.Validate("/")
	assert.Nil(t, err)
	assert.Equal(t, "index.html", path)
}
