package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/upstream --output domain/upstream --outpkg upstreammock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/activity --output domain/activity --outpkg activitymock --filename repository_mock.go
