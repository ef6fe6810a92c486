package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/transfer --output domain/transfer --outpkg transfermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CompetitionSource --dir ../usecase --output usecase --outpkg usecasemock --filename competition_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ClubTransferSource --dir ../usecase --output usecase --outpkg usecasemock --filename club_transfer_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ClubSeasonSource --dir ../usecase --output usecase --outpkg usecasemock --filename club_season_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerProfileSource --dir ../usecase --output usecase --outpkg usecasemock --filename player_profile_source_mock.go
