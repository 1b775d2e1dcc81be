package httpserver

// RegisterStaticRoutes serves the instructions page at / and the public
// asset directory under the web root. Empty paths disable either route.
func (s *Server) RegisterStaticRoutes() {
	if s.Config.Static.IndexFile != "" {
		s.Router.File("/", s.Config.Static.IndexFile)
	}
	if s.Config.Static.PublicDir != "" {
		s.Router.Static("/", s.Config.Static.PublicDir)
	}
}
