package monster

import "animochi/internal/domain/pet"

type CreateRequest struct {
	OwnerID string
	Name    string
}

type GetRequest struct {
	MonsterID string
}

type PublishRequest struct {
	MonsterID string
	UserID    string
}

type Response struct {
	Monster pet.Monster `json:"monster"`
}
