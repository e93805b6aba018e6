// Package repository provides test doubles for the persistence interfaces.
package repository

import (
	"context"

	"fitclub/internal/domain/repository"
)

// StubRepositoryFactory hands out the configured repository doubles.
type StubRepositoryFactory struct {
	Users       repository.UserRepository
	Addresses   repository.AddressRepository
	Classes     repository.ClassRepository
	Bookings    repository.BookingRepository
	Memberships repository.MembershipRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return f.Addresses
}

func (f *StubRepositoryFactory) NewClassRepository() repository.ClassRepository {
	return f.Classes
}

func (f *StubRepositoryFactory) NewBookingRepository() repository.BookingRepository {
	return f.Bookings
}

func (f *StubRepositoryFactory) NewMembershipRepository() repository.MembershipRepository {
	return f.Memberships
}

// PassthroughTxManager runs the callback directly against the stub factory.
// Commit/rollback semantics are outside its scope; the callback's error is
// returned unchanged, mirroring the real manager's behavior on rollback.
type PassthroughTxManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
