package kurrent

import (
	"context"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	usersapi "go.kurrent.dev/client/api/users"
	"go.kurrent.dev/client/protocol"
)

// CreateUser creates user account |login|.
func (c *Client) CreateUser(ctx context.Context, login, password, fullName string,
	groups []string, opts OperationOptions) error {

	var req = &usersapi.CreateReq{
		Options: &usersapi.CreateReq_Options{
			LoginName: login,
			Password:  password,
			FullName:  fullName,
			Groups:    groups,
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = usersapi.NewUsersClient(conn).Create(ctx, req, callOpts...)
			return err
		})
}

// UpdateUser replaces the full name, groups, and password of |login|.
func (c *Client) UpdateUser(ctx context.Context, login, password, fullName string,
	groups []string, opts OperationOptions) error {

	var req = &usersapi.UpdateReq{
		Options: &usersapi.UpdateReq_Options{
			LoginName: login,
			Password:  password,
			FullName:  fullName,
			Groups:    groups,
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = usersapi.NewUsersClient(conn).Update(ctx, req, callOpts...)
			return err
		})
}

// DeleteUser removes user account |login|.
func (c *Client) DeleteUser(ctx context.Context, login string, opts OperationOptions) error {
	var req = &usersapi.DeleteReq{
		Options: &usersapi.DeleteReq_Options{LoginName: login},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = usersapi.NewUsersClient(conn).Delete(ctx, req, callOpts...)
			return err
		})
}

// EnableUser re-enables a disabled account.
func (c *Client) EnableUser(ctx context.Context, login string, opts OperationOptions) error {
	var req = &usersapi.EnableReq{
		Options: &usersapi.EnableReq_Options{LoginName: login},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = usersapi.NewUsersClient(conn).Enable(ctx, req, callOpts...)
			return err
		})
}

// DisableUser disables an account; its credentials stop authenticating.
func (c *Client) DisableUser(ctx context.Context, login string, opts OperationOptions) error {
	var req = &usersapi.DisableReq{
		Options: &usersapi.DisableReq_Options{LoginName: login},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = usersapi.NewUsersClient(conn).Disable(ctx, req, callOpts...)
			return err
		})
}

// ChangeUserPassword changes the password of |login|, asserting its current
// password.
func (c *Client) ChangeUserPassword(ctx context.Context, login, current, next string,
	opts OperationOptions) error {

	var req = &usersapi.ChangePasswordReq{
		Options: &usersapi.ChangePasswordReq_Options{
			LoginName:       login,
			CurrentPassword: current,
			NewPassword:     next,
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = usersapi.NewUsersClient(conn).ChangePassword(ctx, req, callOpts...)
			return err
		})
}

// ResetUserPassword administratively sets the password of |login|.
func (c *Client) ResetUserPassword(ctx context.Context, login, next string,
	opts OperationOptions) error {

	var req = &usersapi.ResetPasswordReq{
		Options: &usersapi.ResetPasswordReq_Options{
			LoginName:   login,
			NewPassword: next,
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = usersapi.NewUsersClient(conn).ResetPassword(ctx, req, callOpts...)
			return err
		})
}

// GetUser returns the details of account |login|.
func (c *Client) GetUser(ctx context.Context, login string, opts OperationOptions) (*protocol.UserDetails, error) {
	var all, err = c.userDetails(ctx, login, opts)
	if err != nil {
		return nil, err
	} else if len(all) == 0 {
		return nil, protocol.ErrResourceNotFound
	}
	return &all[0], nil
}

// ListUsers returns the details of every account.
func (c *Client) ListUsers(ctx context.Context, opts OperationOptions) ([]protocol.UserDetails, error) {
	return c.userDetails(ctx, "", opts)
}

func (c *Client) userDetails(ctx context.Context, login string, opts OperationOptions) ([]protocol.UserDetails, error) {
	var req = &usersapi.DetailsReq{
		Options: &usersapi.DetailsReq_Options{LoginName: login},
	}

	var out []protocol.UserDetails
	var err = c.invoke(ctx, opts.callOptions(), true,
		func(ctx context.Context, conn *grpc.ClientConn) (metadata.MD, error) {
			var stream, err = usersapi.NewUsersClient(conn).Details(ctx, req)
			if err != nil {
				return nil, err
			}
			out = out[:0]
			for {
				var resp, err = stream.Recv()
				if err == io.EOF {
					return stream.Trailer(), nil
				} else if err != nil {
					return stream.Trailer(), err
				} else if resp.UserDetails == nil {
					continue
				}
				var details = protocol.UserDetails{
					LoginName: resp.UserDetails.LoginName,
					FullName:  resp.UserDetails.FullName,
					Groups:    resp.UserDetails.Groups,
					Disabled:  resp.UserDetails.Disabled,
				}
				if lu := resp.UserDetails.LastUpdated; lu != nil {
					details.LastUpdated = time.Unix(0, lu.TicksSinceEpoch*100).UTC()
				}
				out = append(out, details)
			}
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}
