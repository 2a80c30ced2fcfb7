// Package repository defines the storage contracts the workflows depend on.
//
// Implementations live in internal/store/adapters:
//
//	┌──────────────────────────────────────┐
//	│      services (users, posts)         │
//	└──────────────────────────────────────┘
//	                  │
//	                  ▼
//	┌──────────────────────────────────────┐
//	│   domain/repository (interfaces)     │
//	│   UserRepository, PostRepository     │
//	└──────────────────────────────────────┘
//	                  │
//	         ┌────────┴────────┐
//	         ▼                 ▼
//	     adapters/pg     adapters/memory
//
// Lookups by id return ErrNotFound when nothing matches, including ids the
// backend cannot parse.
package repository
