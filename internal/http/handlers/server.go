package handlers

import (
	repo "stockroom/internal/repo"
)

var (
	itemRepo     repo.ItemRepository
	movementRepo repo.MovementRepository
	userRepo     repo.UserRepository
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}
