// Package mockclient holds gomock mocks of the pkg/client interfaces and of
// the cosmos-sdk interfaces they depend on.
//
// The mocks are regenerated with `go generate ./pkg/client/...` and committed
// so that tests build without mockgen installed.
package mockclient

import (
	// Keeps go.uber.org/mock/mockgen/model in go.sum for `go run` based generation.
	// More info: https://github.com/uber-go/mock/issues/83#issuecomment-1931054917
	_ "go.uber.org/mock/mockgen/model"
)
