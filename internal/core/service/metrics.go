package service

import "github.com/portfolio/contact-api/internal/core/ports"

type nopMetrics struct{}

func (nopMetrics) LoginAttempt(string) {}
func (nopMetrics) UserCreated()        {}
func (nopMetrics) MessageCreated()     {}
func (nopMetrics) MessageDedup(bool)   {}

func orNop(m ports.ServiceMetrics) ports.ServiceMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
