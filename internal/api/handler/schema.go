package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

// userResponse is the public account view. It never carries the password hash.
type userResponse struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	LoggedIn bool   `json:"logged_in"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
}

// --- Movies ---

type addMovieRequest struct {
	Title  string `json:"title" validate:"required"`
	Price  int64  `json:"price"`
	Rating int    `json:"rating"`
}

type editMovieRequest struct {
	Price  int64 `json:"price"`
	Rating int   `json:"rating"`
}

type movieResponse struct {
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Rating    int    `json:"rating"`
	Purchased bool   `json:"purchased"`
}

type listMoviesResponse struct {
	Movies []movieResponse `json:"movies"`
	Total  int             `json:"total"`
}

type rentMovieRequest struct {
	Days int `json:"days" validate:"required,gt=0"`
}

type rentMovieResponse struct {
	Title     string `json:"title"`
	Days      int    `json:"days"`
	TotalCost int64  `json:"total_cost"`
	Message   string `json:"message"`
}

type buyMovieResponse struct {
	Title   string `json:"title"`
	Price   int64  `json:"price"`
	Message string `json:"message"`
}

type removeMovieResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
