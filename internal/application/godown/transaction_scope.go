package godown

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
)

// TransactionScope runs assignment writes atomically.
// Implementations begin a transaction, hand the callback repositories bound
// to it, commit on nil and roll back on error.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to one transaction.
type TransactionalRepositories interface {
	GodownRepo() godown.GodownRepository
	AssignmentRepo() godown.AssignmentRepository
}

// NoOpTransactionScope runs the callback directly on the given repositories.
// Used in unit tests.
type NoOpTransactionScope struct {
	godownRepo     godown.GodownRepository
	assignmentRepo godown.AssignmentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(godownRepo godown.GodownRepository, assignmentRepo godown.AssignmentRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{godownRepo: godownRepo, assignmentRepo: assignmentRepo}
}

// Execute runs fn without a transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// GodownRepo returns the godown repository.
func (s *NoOpTransactionScope) GodownRepo() godown.GodownRepository {
	return s.godownRepo
}

// AssignmentRepo returns the assignment repository.
func (s *NoOpTransactionScope) AssignmentRepo() godown.AssignmentRepository {
	return s.assignmentRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
