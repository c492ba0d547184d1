package playground

// ClientScript connects the page to /ws, forwards events from elements
// marked with data-on-<event> and swaps in the HTML of every frame.
const ClientScript = `
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var events = ['click', 'input', 'change'];
    var ws = null;

    function root() {
        return document.getElementById('root');
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            console.log('[minidom] connected');
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var frame;
            try {
                frame = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (frame.type) {
                case 'init':
                    swap(frame.html);
                    break;

                case 'patch':
                    console.log('[minidom] ' + (frame.ops || []).length + ' mutations', frame.ops);
                    swap(frame.html);
                    break;

                case 'error':
                    console.error('[minidom] ' + (frame.code || '') + ' ' + frame.error);
                    break;
            }
        };

        ws.onclose = function() {
            console.log('[minidom] connection lost, reconnecting in', reconnectDelay + 'ms');
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    function swap(html) {
        var active = document.activeElement;
        var focused = active && active.getAttribute ? active.getAttribute('data-node') : null;
        var caret = focused && typeof active.selectionStart === 'number' ? active.selectionStart : null;

        root().innerHTML = html;

        if (focused) {
            var el = root().querySelector('[data-node="' + focused + '"]');
            if (el) {
                el.focus();
                if (caret !== null && el.setSelectionRange) {
                    el.setSelectionRange(caret, caret);
                }
            }
        }
    }

    function listen(type) {
        document.addEventListener(type, function(e) {
            var el = e.target.closest('[data-on-' + type + ']');
            if (!el || !ws || ws.readyState !== WebSocket.OPEN) {
                return;
            }
            var msg = {node: parseInt(el.getAttribute('data-node'), 10), event: type};
            if ('value' in el) {
                msg.value = String(el.value);
            }
            ws.send(JSON.stringify(msg));
        });
    }

    events.forEach(listen);

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
`
