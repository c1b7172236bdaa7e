//go:generate mockgen -source=../user_repository.go     -destination=./mock_user_repository.go     -package=mocks
//go:generate mockgen -source=../product_repository.go  -destination=./mock_product_repository.go  -package=mocks
//go:generate mockgen -source=../purchase_repository.go -destination=./mock_purchase_repository.go -package=mocks
//go:generate mockgen -source=../event_publisher.go     -destination=./mock_event_publisher.go     -package=mocks
//go:generate mockgen -source=../store_services.go      -destination=./mock_store_services.go      -package=mocks

package mocks
