package service

import (
	"context"
	"fmt"
	"log/slog"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
	"github.com/alkira/auth-gateway/internal/ports"
)

// SignupState identifies a stage of the signup orchestration.
type SignupState string

const (
	// StateValidating checks inputs and acquires the management token.
	StateValidating SignupState = "validating"
	// StateTokenAcquired performs the existence check and account creation.
	StateTokenAcquired SignupState = "token_acquired"
	// StateCreated matches and assigns the requested role.
	StateCreated SignupState = "created"
	// StateRoleAssigned enrolls the email MFA method.
	StateRoleAssigned SignupState = "role_assigned"
	// StateMFAEnrolled is the last forward state before completion.
	StateMFAEnrolled SignupState = "mfa_enrolled"
	// StateDone is the terminal success state.
	StateDone SignupState = "done"
	// StateRollingBack deletes the partially provisioned account.
	StateRollingBack SignupState = "rolling_back"
	// StateFailed is the terminal failure state.
	StateFailed SignupState = "failed"
)

// SignupServiceOptions groups dependencies for SignupService.
type SignupServiceOptions struct {
	Provider    ports.IdentityProvider
	DefaultRole string
	Logger      *slog.Logger
}

// SignupService drives the account provisioning sequence against the identity
// provider. A created account ends in one of two states: fully provisioned
// (account, role, MFA method) or deleted. Partial provisioning never survives
// a failed run.
type SignupService struct {
	provider    ports.IdentityProvider
	defaultRole string
	logger      *slog.Logger
}

// NewSignupService constructs a new SignupService.
func NewSignupService(opts SignupServiceOptions) *SignupService {
	defaultRole := opts.DefaultRole
	if defaultRole == "" {
		defaultRole = "reader"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SignupService{
		provider:    opts.Provider,
		defaultRole: defaultRole,
		logger:      logger,
	}
}

// signupRun tracks one pass through the orchestration state machine.
type signupRun struct {
	creds     domainauth.Credentials
	state     SignupState
	mgmtToken string
	userID    string
	failure   error // the step error, preserved across rollback
}

// fail terminates the run without compensation. Valid only before the
// account-creation step has succeeded.
func (r *signupRun) fail(err error) {
	r.failure = err
	r.state = StateFailed
}

// rollBack records the step error and routes the run through compensation.
func (r *signupRun) rollBack(err error) {
	r.failure = err
	r.state = StateRollingBack
}

// Signup runs the provisioning sequence: existence check, account creation,
// role lookup and assignment, MFA enrollment. Each forward step is gated on
// the previous one; any failure after creation triggers exactly one
// compensating deletion, and the step's own error is what the caller gets
// back regardless of the deletion outcome.
func (s *SignupService) Signup(ctx context.Context, creds domainauth.Credentials) (domainauth.CreatedAccount, error) {
	run := &signupRun{creds: creds, state: StateValidating}

	for run.state != StateDone && run.state != StateFailed {
		switch run.state {
		case StateValidating:
			s.stepValidate(ctx, run)
		case StateTokenAcquired:
			s.stepCreate(ctx, run)
		case StateCreated:
			s.stepAssignRole(ctx, run)
		case StateRoleAssigned:
			s.stepEnrollMFA(ctx, run)
		case StateMFAEnrolled:
			run.state = StateDone
		case StateRollingBack:
			s.stepRollBack(ctx, run)
		}
	}

	if run.failure != nil {
		return domainauth.CreatedAccount{}, run.failure
	}
	return domainauth.CreatedAccount{
		UserID:      run.userID,
		Email:       run.creds.Email,
		DisplayName: run.creds.DisplayName(),
		Role:        run.creds.Role,
	}, nil
}

// stepValidate checks required fields locally and acquires the per-run
// management token. No provider call is made for invalid input.
func (s *SignupService) stepValidate(ctx context.Context, run *signupRun) {
	if run.creds.Email == "" || run.creds.Password == "" {
		run.fail(apperrors.Validation("Email and password are required."))
		return
	}
	if !emailPattern.MatchString(run.creds.Email) {
		run.fail(apperrors.Validation("Please enter a valid email address."))
		return
	}
	if run.creds.FirstName == "" {
		run.fail(apperrors.Validation("First name is required."))
		return
	}
	if run.creds.Role == "" {
		run.creds.Role = s.defaultRole
	}

	token, err := s.provider.ManagementToken(ctx)
	if err != nil {
		run.fail(providerFailure(err, "acquire management token"))
		return
	}
	run.mgmtToken = token
	run.state = StateTokenAcquired
}

// stepCreate rejects duplicate emails, then creates the account. Neither
// failure needs compensation: no account exists yet.
func (s *SignupService) stepCreate(ctx context.Context, run *signupRun) {
	existing, err := s.provider.FindUsersByEmail(ctx, run.creds.Email, run.mgmtToken)
	if err != nil {
		run.fail(providerFailure(err, "look up existing users"))
		return
	}
	if len(existing) > 0 {
		run.fail(apperrors.DuplicateAccount("User with this email already exists."))
		return
	}

	userID, err := s.provider.CreateUser(ctx, ports.CreateUserInput{
		Email:       run.creds.Email,
		Password:    run.creds.Password,
		DisplayName: run.creds.ProviderUsername(),
	})
	if err != nil {
		if _, ok := apperrors.AsProvider(err); ok {
			run.fail(apperrors.Validation(apperrors.Translate(err)))
			return
		}
		run.fail(providerFailure(err, "create user"))
		return
	}
	run.userID = userID
	run.state = StateCreated
}

// stepAssignRole matches the requested role by exact name against the
// provider's role list and assigns it.
func (s *SignupService) stepAssignRole(ctx context.Context, run *signupRun) {
	roles, err := s.provider.ListRoles(ctx, run.mgmtToken)
	if err != nil {
		run.rollBack(providerFailure(err, "list roles"))
		return
	}

	var roleID string
	for _, role := range roles {
		if role.Name == run.creds.Role {
			roleID = role.ID
			break
		}
	}
	if roleID == "" {
		run.rollBack(apperrors.InvalidRole("Invalid role specified."))
		return
	}

	err = s.provider.AssignRole(ctx, ports.AssignRoleInput{
		RoleID:          roleID,
		UserID:          run.userID,
		ManagementToken: run.mgmtToken,
	})
	if err != nil {
		run.rollBack(apperrors.Wrap(err, apperrors.ErrCodeRoleAssignment, apperrors.Translate(err)))
		return
	}
	run.state = StateRoleAssigned
}

// stepEnrollMFA registers the email MFA method for the new account.
func (s *SignupService) stepEnrollMFA(ctx context.Context, run *signupRun) {
	err := s.provider.EnrollMFAEmail(ctx, ports.EnrollMFAInput{
		UserID:          run.userID,
		Email:           run.creds.Email,
		ManagementToken: run.mgmtToken,
	})
	if err != nil {
		run.rollBack(apperrors.Wrap(err, apperrors.ErrCodeMFAEnrollment, apperrors.Translate(err)))
		return
	}
	run.state = StateMFAEnrolled
}

// stepRollBack deletes the partially provisioned account. The deletion is
// attempted exactly once; its outcome is logged but must not mask the step
// error already recorded on the run.
func (s *SignupService) stepRollBack(ctx context.Context, run *signupRun) {
	if err := s.provider.DeleteUser(ctx, run.userID, run.mgmtToken); err != nil {
		s.logger.ErrorContext(ctx, "compensating delete failed, manual cleanup required",
			"user_id", run.userID,
			"error", err)
	} else {
		s.logger.InfoContext(ctx, "rolled back partially provisioned account",
			"user_id", run.userID)
	}
	run.state = StateFailed
}

// providerFailure wraps a provider or transport error as a generic
// server-side failure with the uniformly translated message.
func providerFailure(err error, op string) error {
	return apperrors.Wrap(fmt.Errorf("%s: %w", op, err), apperrors.ErrCodeServerError, apperrors.Translate(err))
}
