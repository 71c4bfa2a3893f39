package review

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sessions контроллеры администраторов. Маркер занятости общий для всех.
type Sessions struct {
	lister   PaymentLister
	resolver Resolver
	locker   Locker
	observer Observer
	l        *logrus.Logger

	confirmationTTL time.Duration
	resolveTimeout  time.Duration

	mu          sync.Mutex
	controllers map[uuid.UUID]*Controller
}

func NewSessions(lister PaymentLister, resolver Resolver, locker Locker, l *logrus.Logger) *Sessions {
	return &Sessions{
		lister:          lister,
		resolver:        resolver,
		locker:          locker,
		observer:        nopObserver{},
		l:               l,
		confirmationTTL: DefaultConfirmationTTL,
		resolveTimeout:  DefaultResolveTimeout,
		controllers:     make(map[uuid.UUID]*Controller),
	}
}

func (s *Sessions) SetConfirmationTTL(ttl time.Duration) *Sessions {
	if ttl > 0 {
		s.confirmationTTL = ttl
	}
	return s
}

func (s *Sessions) SetResolveTimeout(timeout time.Duration) *Sessions {
	if timeout > 0 {
		s.resolveTimeout = timeout
	}
	return s
}

func (s *Sessions) SetObserver(o Observer) *Sessions {
	if o != nil {
		s.observer = o
	}
	return s
}

// For возвращает контроллер администратора, создавая его при первом обращении.
func (s *Sessions) For(session AdminSession) (*Controller, error) {
	if !session.IsAdmin() {
		return nil, ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.controllers[session.AdminID]; ok {
		return c, nil
	}

	c, err := NewController(session, s.lister, s.resolver, s.locker, s.l)
	if err != nil {
		return nil, err
	}
	c.SetConfirmationTTL(s.confirmationTTL).
		SetResolveTimeout(s.resolveTimeout).
		SetObserver(s.observer)

	s.controllers[session.AdminID] = c
	return c, nil
}
