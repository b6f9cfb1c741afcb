package routing

// Route space roots.
const (
	CustomerRoot = "/"
	AdminRoot    = "/admin"
)

// Customer-space routes.
const (
	HomeRoute     = "/"
	ProfileRoute  = "/profile"
	ProductsRoute = "/products"
	CartRoute     = "/cart"
)

// Admin-space routes.
const (
	AdminUsersRoute      = "/admin/users"
	AdminUserRoute       = "/admin/user/" // + uid
	AdminProductsRoute   = "/admin/products"
	AdminAddProductRoute = "/admin/addproduct"
)
