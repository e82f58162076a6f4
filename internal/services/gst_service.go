package services

import "billbook/internal/gst"

type GSTServiceInterface interface {
	Verify(gstNumber string) gst.Result
}

type GSTService struct{}

func NewGSTService() GSTServiceInterface {
	return &GSTService{}
}

func (g *GSTService) Verify(gstNumber string) gst.Result {
	return gst.Verify(gstNumber)
}
