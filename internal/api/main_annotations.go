// @title           fesipop API
// @version         1.0
// @description     Festival event backend: events, artists, and descriptions. Reads are public; writes require a bearer token obtained from /login.
// @BasePath        /
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the token from /login.
package api
