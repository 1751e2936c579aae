package renderer

// VertexShaderSource is the single vertex stage shared by both programs:
// passthrough position, forwarded texture coordinate.
const VertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main()
{
    TexCoord = aTexCoord;
    gl_Position = vec4(aPos, 1.0);
}
`

// NormalFragmentSource paints a flat orange quad. It declares no uniforms.
const NormalFragmentSource = `
#version 330 core
out vec4 FragColor;
in vec2 TexCoord;

void main()
{
    FragColor = vec4(0.8, 0.4, 0.2, 1.0);
}
`

// WaveFragmentSource runs a horizontal wave through the red channel, driven
// by the host clock via the time uniform.
const WaveFragmentSource = `
#version 330 core
out vec4 FragColor;
in vec2 TexCoord;
uniform float time;

void main()
{
    float wave = sin(TexCoord.x * 10.0 + time * 5.0) * 0.1;
    FragColor = vec4(0.2 + wave, 0.5, 1.0, 1.0);
}
`
