// Package glapi describes the OpenGL entry points used by nmgl.
//
// Code that issues GL calls takes a Functions value instead of calling a
// binding package directly. The gogl sub-package implements Functions on
// top of go-gl, and glapitest provides a recording implementation for tests
// that have no GL context available.
package glapi

type Enum uint32

type Functions interface {
	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(target Enum, id uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	DrawBuffers(bufs []Enum)
	ReadBuffer(src Enum)

	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target Enum, id uint32)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, ty Enum)
	TexImage2DMultisample(target Enum, samples int32, internalFormat Enum, width, height int32, fixedSampleLocations bool)
	TexParameteri(target, pname Enum, param int32)

	GenRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)
	BindRenderbuffer(target Enum, id uint32)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)
	RenderbufferStorageMultisample(target Enum, samples int32, internalFormat Enum, width, height int32)

	Enable(capability Enum)
	Disable(capability Enum)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	ClearBufferfv(buffer Enum, drawBuffer int32, value []float32)

	PixelStorei(pname Enum, param int32)
	ReadPixels(x, y, width, height int32, format, ty Enum, pixels []byte)

	GetIntegerv(pname Enum, data []int32)
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	GetError() Enum
}
