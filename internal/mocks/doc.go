// Package mocks provides centralized mock implementations for testing.
//
// Store mocks are built on testify/mock and are driven with On/Return
// expectations. Service, token and password mocks use function fields so a
// test only overrides the calls it cares about:
//
//	jwtSvc := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: 1, Role: domain.RoleAdmin}, nil
//	    },
//	}
package mocks
