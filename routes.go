package authclient

import "net/url"

// Routes holds the storefront paths the client redirects to. Defaults mirror
// the storefront's page layout; override them when embedding elsewhere.
type Routes struct {
	Login               string
	VerificationPending string
	AdminHome           string
	SellerHome          string
	CustomerHome        string
}

func DefaultRoutes() *Routes {
	return &Routes{
		Login:               "/login",
		VerificationPending: "/seller/verification-pending",
		AdminHome:           "/admin/dashboard",
		SellerHome:          "/seller/dashboard",
		CustomerHome:        "/user/dashboard",
	}
}

// Endpoints holds the backend paths the client calls.
type Endpoints struct {
	Login             string
	Register          string
	RegisterSeller    string
	Profile           string
	Refresh           string
	Logout            string
	CheckVerification string
}

func DefaultEndpoints() *Endpoints {
	return &Endpoints{
		Login:             "/auth/login",
		Register:          "/auth/register",
		RegisterSeller:    "/users/register-seller",
		Profile:           "/auth/profile",
		Refresh:           "/auth/refresh",
		Logout:            "/auth/logout",
		CheckVerification: "/auth/check-verification",
	}
}

// Redirect describes a navigation target. Expired tags the login entry with
// "this session ran out" (vs. a plain unauthenticated visit); ReturnTo is the
// originally requested path for post-login return.
type Redirect struct {
	Path     string
	Expired  bool
	ReturnTo string
}

// URL renders the target as path plus query flags.
func (r Redirect) URL() string {
	q := url.Values{}
	if r.Expired {
		q.Set("expired", "true")
	}
	if r.ReturnTo != "" {
		q.Set("redirect", r.ReturnTo)
	}
	if len(q) == 0 {
		return r.Path
	}
	return r.Path + "?" + q.Encode()
}

// homeFor maps an identity to its role home. The mapping is shared by
// RedirectTarget and the guard's wrong-role redirect.
func (r *Routes) homeFor(identity *Identity) Redirect {
	switch {
	case identity == nil:
		return Redirect{Path: r.Login}
	case identity.Role.Is(RoleSeller) && !identity.IsVerified:
		return Redirect{Path: r.VerificationPending}
	case identity.Role.Is(RoleAdmin):
		return Redirect{Path: r.AdminHome}
	case identity.Role.Is(RoleSeller):
		return Redirect{Path: r.SellerHome}
	default:
		return Redirect{Path: r.CustomerHome}
	}
}
