// Package gogl implements glapi.Functions using the go-gl OpenGL 4.1 core bindings.
//
// New must be called after an OpenGL context has been made current on the
// calling thread.
package gogl

import (
	"github.com/bloeys/nmgl/glapi"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ glapi.Functions = &Functions{}

type Functions struct{}

// New loads the GL function pointers for the current context.
func New() (*Functions, error) {

	if err := gl.Init(); err != nil {
		return nil, err
	}

	return &Functions{}, nil
}

func (f *Functions) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (f *Functions) DeleteFramebuffer(id uint32) {
	gl.DeleteFramebuffers(1, &id)
}

func (f *Functions) BindFramebuffer(target glapi.Enum, id uint32) {
	gl.BindFramebuffer(uint32(target), id)
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), texture, level)
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget glapi.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbufferTarget), renderbuffer)
}

func (f *Functions) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	return glapi.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) DrawBuffers(bufs []glapi.Enum) {

	if len(bufs) == 0 {
		none := uint32(gl.NONE)
		gl.DrawBuffers(1, &none)
		return
	}

	glBufs := make([]uint32, len(bufs))
	for i := 0; i < len(bufs); i++ {
		glBufs[i] = uint32(bufs[i])
	}

	gl.DrawBuffers(int32(len(glBufs)), &glBufs[0])
}

func (f *Functions) ReadBuffer(src glapi.Enum) {
	gl.ReadBuffer(uint32(src))
}

func (f *Functions) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (f *Functions) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (f *Functions) BindTexture(target glapi.Enum, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (f *Functions) TexImage2D(target glapi.Enum, level int32, internalFormat glapi.Enum, width, height int32, format, ty glapi.Enum) {
	gl.TexImage2D(uint32(target), level, int32(internalFormat), width, height, 0, uint32(format), uint32(ty), nil)
}

func (f *Functions) TexImage2DMultisample(target glapi.Enum, samples int32, internalFormat glapi.Enum, width, height int32, fixedSampleLocations bool) {
	gl.TexImage2DMultisample(uint32(target), samples, uint32(internalFormat), width, height, fixedSampleLocations)
}

func (f *Functions) TexParameteri(target, pname glapi.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (f *Functions) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (f *Functions) DeleteRenderbuffer(id uint32) {
	gl.DeleteRenderbuffers(1, &id)
}

func (f *Functions) BindRenderbuffer(target glapi.Enum, id uint32) {
	gl.BindRenderbuffer(uint32(target), id)
}

func (f *Functions) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int32) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), width, height)
}

func (f *Functions) RenderbufferStorageMultisample(target glapi.Enum, samples int32, internalFormat glapi.Enum, width, height int32) {
	gl.RenderbufferStorageMultisample(uint32(target), samples, uint32(internalFormat), width, height)
}

func (f *Functions) Enable(capability glapi.Enum) {
	gl.Enable(uint32(capability))
}

func (f *Functions) Disable(capability glapi.Enum) {
	gl.Disable(uint32(capability))
}

func (f *Functions) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (f *Functions) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (f *Functions) ClearBufferfv(buffer glapi.Enum, drawBuffer int32, value []float32) {
	gl.ClearBufferfv(uint32(buffer), drawBuffer, &value[0])
}

func (f *Functions) PixelStorei(pname glapi.Enum, param int32) {
	gl.PixelStorei(uint32(pname), param)
}

func (f *Functions) ReadPixels(x, y, width, height int32, format, ty glapi.Enum, pixels []byte) {

	if len(pixels) == 0 {
		return
	}

	gl.ReadPixels(x, y, width, height, uint32(format), uint32(ty), gl.Ptr(&pixels[0]))
}

func (f *Functions) GetIntegerv(pname glapi.Enum, data []int32) {
	gl.GetIntegerv(uint32(pname), &data[0])
}

func (f *Functions) GetString(name glapi.Enum) string {

	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}

	return gl.GoStr(s)
}

func (f *Functions) GetStringi(name glapi.Enum, index uint32) string {

	s := gl.GetStringi(uint32(name), index)
	if s == nil {
		return ""
	}

	return gl.GoStr(s)
}

func (f *Functions) GetError() glapi.Enum {
	return glapi.Enum(gl.GetError())
}
