package user

// DummyHash exposes the hash Verify compares against for unknown users.
func (s *Service) DummyHash() []byte { return s.dummyHash() }
